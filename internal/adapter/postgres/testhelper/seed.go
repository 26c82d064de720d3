package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Name:         ptr("Test User " + suffix),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedNode creates a node under the given parent (nil for top level) with
// defaults: kind document, empty content, position 0, version 1.
// Use the options to override fields before insert.
func SeedNode(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, parentID *uuid.UUID, opts ...func(*domain.Node)) domain.Node {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	node := domain.Node{
		ID:        uuid.New(),
		UserID:    userID,
		ParentID:  parentID,
		Name:      "node-" + suffix,
		Kind:      domain.NodeKindDocument,
		Content:   map[string]any{},
		Metadata:  map[string]any{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&node)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO nodes (id, user_id, parent_id, name, kind, color, reference_id,
		                    content, metadata, position, version, canvas_x, canvas_y,
		                    created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		node.ID, node.UserID, node.ParentID, node.Name, string(node.Kind), node.Color,
		node.ReferenceID, node.Content, node.Metadata, node.Position, node.Version,
		node.CanvasX, node.CanvasY, node.CreatedAt, node.UpdatedAt, node.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNode insert node: %v", err)
	}

	return node
}

// WithKind overrides the seeded node kind.
func WithKind(kind domain.NodeKind) func(*domain.Node) {
	return func(n *domain.Node) { n.Kind = kind }
}

// WithName overrides the seeded node name.
func WithName(name string) func(*domain.Node) {
	return func(n *domain.Node) { n.Name = name }
}

// WithContent overrides the seeded node content payload.
func WithContent(content map[string]any) func(*domain.Node) {
	return func(n *domain.Node) { n.Content = content }
}

// WithPosition overrides the seeded node position.
func WithPosition(position int) func(*domain.Node) {
	return func(n *domain.Node) { n.Position = position }
}

// WithCreatedAt overrides the seeded node creation time. Useful for keyset
// pagination tests that need a deterministic order.
func WithCreatedAt(at time.Time) func(*domain.Node) {
	return func(n *domain.Node) { n.CreatedAt = at }
}

// WithDeletedAt marks the seeded node as soft-deleted.
func WithDeletedAt(at time.Time) func(*domain.Node) {
	return func(n *domain.Node) { n.DeletedAt = &at }
}

// SeedTag creates a tag for the user. Returns a filled domain.Tag.
func SeedTag(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.UserID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert tag: %v", err)
	}

	return tag
}

// AttachTag links a tag to a node directly.
func AttachTag(t *testing.T, pool *pgxpool.Pool, nodeID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO node_tags (node_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		nodeID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: AttachTag insert node_tag: %v", err)
	}
}

// SeedZone creates a zone for the user. Returns a filled domain.Zone.
func SeedZone(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Zone {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	zone := domain.Zone{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "zone-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO zones (id, user_id, name, position, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		zone.ID, zone.UserID, zone.Name, zone.Position, zone.IsDefault, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedZone insert zone: %v", err)
	}

	return zone
}

// SeedModule creates a module in the given zone with the supplied config blob.
// Returns a filled domain.Module.
func SeedModule(t *testing.T, pool *pgxpool.Pool, userID, zoneID uuid.UUID, config []byte) domain.Module {
	t.Helper()
	ctx := context.Background()

	if len(config) == 0 {
		config = []byte("{}")
	}

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	module := domain.Module{
		ID:        uuid.New(),
		UserID:    userID,
		ZoneID:    zoneID,
		Name:      "module-" + suffix,
		Kind:      domain.ModuleKindTable,
		Config:    config,
		GridW:     4,
		GridH:     3,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO modules (id, user_id, zone_id, name, kind, config, grid_x, grid_y, grid_w, grid_h, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		module.ID, module.UserID, module.ZoneID, module.Name, string(module.Kind),
		module.Config, module.GridX, module.GridY, module.GridW, module.GridH,
		module.CreatedAt, module.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedModule insert module: %v", err)
	}

	return module
}
