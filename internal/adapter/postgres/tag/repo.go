// Package tag implements the tag repository and the node-tag association
// layer using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwalsh/lattice-backend/internal/adapter/postgres"
	"github.com/rwalsh/lattice-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tagColumns = []string{"id", "user_id", "name", "color", "created_at"}

type tagRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Color     *string   `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

func (r tagRow) toDomain() domain.Tag {
	return domain.Tag{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
	}
}

func toDomainTags(rows []tagRow) []domain.Tag {
	tags := make([]domain.Tag, len(rows))
	for i, r := range rows {
		tags[i] = r.toDomain()
	}
	return tags
}

// Create inserts a new tag. Returns domain.ErrAlreadyExists if the owner
// already has a tag with the same name.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	query := builder.
		Insert("tags").
		Columns("id", "user_id", "name", "color").
		Values(t.ID, t.UserID, t.Name, t.Color).
		Suffix("RETURNING id, user_id, name, color, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create tag: %w", err)
	}

	var row tagRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", t.ID)
	}

	tag := row.toDomain()
	return &tag, nil
}

// GetByID returns an owner's tag by primary key.
func (r *Repo) GetByID(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	sql, args, err := builder.
		Select(tagColumns...).
		From("tags").
		Where(sq.Eq{"id": tagID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tag: %w", err)
	}

	var row tagRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", tagID)
	}

	tag := row.toDomain()
	return &tag, nil
}

// List returns all of an owner's tags ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	query := builder.
		Select(tagColumns...).
		From("tags").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC")

	return r.selectTags(ctx, query)
}

// Update renames or recolors a tag. Returns domain.ErrAlreadyExists if the
// new name collides with another tag of the same owner.
func (r *Repo) Update(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error) {
	update := builder.
		Update("tags").
		Where(sq.Eq{"id": tagID, "user_id": userID}).
		Suffix("RETURNING id, user_id, name, color, created_at")

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Color != nil {
		update = update.Set("color", *params.Color)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update tag: %w", err)
	}

	var row tagRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", tagID)
	}

	tag := row.toDomain()
	return &tag, nil
}

// Delete removes a tag. Its node associations are removed by the
// foreign-key cascade; nodes themselves are untouched.
func (r *Repo) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	sql, args, err := builder.
		Delete("tags").
		Where(sq.Eq{"id": tagID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete tag: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "tag", tagID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}
	return nil
}

// EnsureByNames resolves the given names to tags, creating any that do not
// exist yet, and returns all of them. The insert uses ON CONFLICT DO NOTHING
// against the per-owner unique name index, so concurrent calls with the same
// names converge on a single row per name instead of failing.
func (r *Repo) EnsureByNames(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := builder.
		Insert("tags").
		Columns("user_id", "name")
	for _, name := range names {
		insert = insert.Values(userID, name)
	}
	sql, args, err := insert.
		Suffix("ON CONFLICT (user_id, name) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ensure tags insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("ensure tags insert: %w", err)
	}

	sql, args, err = builder.
		Select(tagColumns...).
		From("tags").
		Where(sq.Eq{"user_id": userID, "name": names}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ensure tags select: %w", err)
	}

	var rows []tagRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("ensure tags select: %w", err)
	}

	return toDomainTags(rows), nil
}

// ResolveIDsByNames returns the ids of the owner's tags matching the given
// names. Names with no tag are silently absent from the result; nothing is
// created.
func (r *Repo) ResolveIDsByNames(ctx context.Context, userID uuid.UUID, names []string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	sql, args, err := builder.
		Select("id").
		From("tags").
		Where(sq.Eq{"user_id": userID, "name": names}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve tag names: %w", err)
	}

	var ids []uuid.UUID
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("resolve tag names: %w", err)
	}
	return ids, nil
}

// ResolveIDs returns the subset of tagIDs that exist and belong to the owner.
func (r *Repo) ResolveIDs(ctx context.Context, userID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	sql, args, err := builder.
		Select("id").
		From("tags").
		Where(sq.Eq{"user_id": userID, "id": tagIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve tag ids: %w", err)
	}

	var ids []uuid.UUID
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("resolve tag ids: %w", err)
	}
	return ids, nil
}

// ReplaceNodeAssociations makes tagIDs the exact tag set of a node: stale
// associations are removed and missing ones inserted. Run it inside a
// transaction so readers never observe the emptied intermediate state.
func (r *Repo) ReplaceNodeAssociations(ctx context.Context, nodeID uuid.UUID, tagIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete("node_tags").
		Where(sq.Eq{"node_id": nodeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear node tags: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear node tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insert := builder.
		Insert("node_tags").
		Columns("node_id", "tag_id")
	for _, tagID := range tagIDs {
		insert = insert.Values(nodeID, tagID)
	}
	sql, args, err = insert.
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set node tags: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "node", nodeID)
	}
	return nil
}

// Attach links a tag to a node. Attaching an already linked tag is a no-op.
func (r *Repo) Attach(ctx context.Context, nodeID, tagID uuid.UUID) error {
	sql, args, err := builder.
		Insert("node_tags").
		Columns("node_id", "tag_id").
		Values(nodeID, tagID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build attach tag: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "tag", tagID)
	}
	return nil
}

// Detach unlinks a tag from a node. Detaching a tag that is not linked is a
// no-op.
func (r *Repo) Detach(ctx context.Context, nodeID, tagID uuid.UUID) error {
	sql, args, err := builder.
		Delete("node_tags").
		Where(sq.Eq{"node_id": nodeID, "tag_id": tagID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build detach tag: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}

// ListByNodeID returns the tags attached to one node, ordered by name.
func (r *Repo) ListByNodeID(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error) {
	query := builder.
		Select("t.id", "t.user_id", "t.name", "t.color", "t.created_at").
		From("tags t").
		Join("node_tags nt ON nt.tag_id = t.id").
		Where(sq.Eq{"nt.node_id": nodeID}).
		OrderBy("t.name ASC")

	return r.selectTags(ctx, query)
}

// ListByNodeIDs returns the tags for a batch of nodes keyed by node id.
// One query regardless of batch size.
func (r *Repo) ListByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	if len(nodeIDs) == 0 {
		return map[uuid.UUID][]domain.Tag{}, nil
	}

	sql, args, err := builder.
		Select("nt.node_id", "t.id", "t.user_id", "t.name", "t.color", "t.created_at").
		From("tags t").
		Join("node_tags nt ON nt.tag_id = t.id").
		Where(sq.Eq{"nt.node_id": nodeIDs}).
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list node tags: %w", err)
	}

	type assocRow struct {
		NodeID    uuid.UUID `db:"node_id"`
		ID        uuid.UUID `db:"id"`
		UserID    uuid.UUID `db:"user_id"`
		Name      string    `db:"name"`
		Color     *string   `db:"color"`
		CreatedAt time.Time `db:"created_at"`
	}

	var rows []assocRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list node tags: %w", err)
	}

	out := make(map[uuid.UUID][]domain.Tag, len(nodeIDs))
	for _, row := range rows {
		out[row.NodeID] = append(out[row.NodeID], domain.Tag{
			ID:        row.ID,
			UserID:    row.UserID,
			Name:      row.Name,
			Color:     row.Color,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *Repo) selectTags(ctx context.Context, query sq.SelectBuilder) ([]domain.Tag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag select: %w", err)
	}

	var rows []tagRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}

	return toDomainTags(rows), nil
}
