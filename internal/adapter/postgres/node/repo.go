// Package node implements the node repository using PostgreSQL.
// It owns the canonical tree of content units: CRUD with optimistic
// versioning, soft deletion, sibling positioning, keyset pagination and the
// tree traversals layered on parent_id back references.
package node

import (
	"context"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwalsh/lattice-backend/internal/adapter/postgres"
	"github.com/rwalsh/lattice-backend/internal/domain"
)

// SearchLimit caps full-text search result sets.
const SearchLimit = 50

// Repo provides node persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new node repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// builder is the shared squirrel statement builder with $N placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var nodeColumns = []string{
	"id", "user_id", "parent_id", "name", "kind", "color", "reference_id",
	"content", "metadata", "position", "version", "canvas_x", "canvas_y",
	"created_at", "updated_at", "deleted_at",
}

// nodeRow mirrors the nodes table for scany.
type nodeRow struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.UUID      `db:"user_id"`
	ParentID    *uuid.UUID     `db:"parent_id"`
	Name        string         `db:"name"`
	Kind        string         `db:"kind"`
	Color       *string        `db:"color"`
	ReferenceID *string        `db:"reference_id"`
	Content     map[string]any `db:"content"`
	Metadata    map[string]any `db:"metadata"`
	Position    int            `db:"position"`
	Version     int            `db:"version"`
	CanvasX     int            `db:"canvas_x"`
	CanvasY     int            `db:"canvas_y"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

func (r nodeRow) toDomain() domain.Node {
	return domain.Node{
		ID:          r.ID,
		UserID:      r.UserID,
		ParentID:    r.ParentID,
		Name:        r.Name,
		Kind:        domain.NodeKind(r.Kind),
		Color:       r.Color,
		ReferenceID: r.ReferenceID,
		Content:     r.Content,
		Metadata:    r.Metadata,
		Position:    r.Position,
		Version:     r.Version,
		CanvasX:     r.CanvasX,
		CanvasY:     r.CanvasY,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

func toDomainNodes(rows []nodeRow) []domain.Node {
	nodes := make([]domain.Node, len(rows))
	for i, r := range rows {
		nodes[i] = r.toDomain()
	}
	return nodes
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new node and returns the persisted row.
// Returns domain.ErrAlreadyExists if the owner already uses the reference id.
func (r *Repo) Create(ctx context.Context, n *domain.Node) (*domain.Node, error) {
	content := n.Content
	if content == nil {
		content = map[string]any{}
	}
	metadata := n.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	query := builder.
		Insert("nodes").
		Columns("id", "user_id", "parent_id", "name", "kind", "color",
			"reference_id", "content", "metadata", "position", "canvas_x", "canvas_y").
		Values(n.ID, n.UserID, n.ParentID, n.Name, n.Kind.String(), n.Color,
			n.ReferenceID, content, metadata, n.Position, n.CanvasX, n.CanvasY).
		Suffix("RETURNING " + columnList())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create node: %w", err)
	}

	var row nodeRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "node", n.ID)
	}

	node := row.toDomain()
	return &node, nil
}

// Update applies a partial patch guarded by the optimistic version token.
// The statement only matches when the stored version equals expectedVersion;
// on a miss the current version is re-read to distinguish ErrNotFound from
// a VersionConflictError carrying the winner's version.
func (r *Repo) Update(ctx context.Context, userID, nodeID uuid.UUID, expectedVersion int, params domain.NodeUpdateParams) (*domain.Node, error) {
	update := builder.
		Update("nodes").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": nodeID, "user_id": userID, "version": expectedVersion})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Color != nil {
		if *params.Color == "" {
			update = update.Set("color", nil)
		} else {
			update = update.Set("color", *params.Color)
		}
	}
	if params.Content != nil {
		update = update.Set("content", params.Content)
	}
	if params.Metadata != nil {
		update = update.Set("metadata", params.Metadata)
	}
	if params.CanvasX != nil {
		update = update.Set("canvas_x", *params.CanvasX)
	}
	if params.CanvasY != nil {
		update = update.Set("canvas_y", *params.CanvasY)
	}

	sql, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update node: %w", err)
	}

	var row nodeRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	err = pgxscan.Get(ctx, q, &row, sql, args...)
	if err == nil {
		node := row.toDomain()
		return &node, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "node", nodeID)
	}

	// Zero rows: either the node is gone or the version is stale.
	current, verErr := r.currentVersion(ctx, userID, nodeID)
	if verErr != nil {
		return nil, verErr
	}
	return nil, domain.NewVersionConflictError(expectedVersion, current)
}

// SetTreePosition moves a node to a new parent and sibling position in a
// single versioned update. Cycle checks are the caller's responsibility.
func (r *Repo) SetTreePosition(ctx context.Context, userID, nodeID uuid.UUID, parentID *uuid.UUID, position int) (*domain.Node, error) {
	query := builder.
		Update("nodes").
		Set("parent_id", parentID).
		Set("position", position).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		Suffix("RETURNING " + columnList())

	return r.getReturning(ctx, query, nodeID)
}

// SetPosition updates only the sibling position (reorder within the current
// parent), bumping the version.
func (r *Repo) SetPosition(ctx context.Context, userID, nodeID uuid.UUID, position int) (*domain.Node, error) {
	query := builder.
		Update("nodes").
		Set("position", position).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		Suffix("RETURNING " + columnList())

	return r.getReturning(ctx, query, nodeID)
}

// SoftDelete marks a node deleted without removing it.
// Returns domain.ErrNotFound if the node is missing, foreign or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error) {
	query := builder.
		Update("nodes").
		Set("deleted_at", sq.Expr("now()")).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + columnList())

	return r.getReturning(ctx, query, nodeID)
}

// Restore clears the soft-delete mark.
// Returns domain.ErrNotFound unless the node is currently soft-deleted.
func (r *Repo) Restore(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error) {
	query := builder.
		Update("nodes").
		Set("deleted_at", nil).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		Where("deleted_at IS NOT NULL").
		Suffix("RETURNING " + columnList())

	return r.getReturning(ctx, query, nodeID)
}

// Delete removes a node permanently. Foreign-key cascades remove all
// structural descendants, tag associations and node references in the same
// statement, so the cascade is atomic.
func (r *Repo) Delete(ctx context.Context, userID, nodeID uuid.UUID) error {
	sql, args, err := builder.
		Delete("nodes").
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete node: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "node", nodeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("node %s: %w", nodeID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a node by primary key with user_id filter.
// Soft-deleted nodes are excluded unless includeDeleted is set.
func (r *Repo) GetByID(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error) {
	query := builder.
		Select(nodeColumns...).
		From("nodes").
		Where(sq.Eq{"id": nodeID, "user_id": userID})
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get node: %w", err)
	}

	var row nodeRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "node", nodeID)
	}

	node := row.toDomain()
	return &node, nil
}

// List returns up to limit nodes ordered by creation time descending.
// cursor, when set, continues strictly after the cursor node: only rows with
// an earlier created_at are returned, which keeps pagination stable under
// concurrent inserts. A cursor whose node was hard-deleted mid-pagination
// yields domain.ErrNotFound so callers restart instead of reading a silent
// empty page.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int, cursor *uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	query := builder.
		Select(nodeColumns...).
		From("nodes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	if cursor != nil {
		query = query.Where(
			sq.Expr("created_at < (SELECT created_at FROM nodes WHERE id = ?)", *cursor),
		)
	}

	nodes, err := r.selectNodes(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 && cursor != nil {
		if err := r.checkCursor(ctx, userID, *cursor); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// checkCursor distinguishes a genuine end of list from a cursor node that no
// longer exists, which turns the keyset subquery NULL and matches no rows.
func (r *Repo) checkCursor(ctx context.Context, userID, cursor uuid.UUID) error {
	sql, args, err := builder.
		Select("1").
		From("nodes").
		Where(sq.Eq{"id": cursor, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cursor check: %w", err)
	}

	var one int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		return postgres.MapError(err, "cursor", cursor)
	}
	return nil
}

// Search performs a case-insensitive substring match against the node name
// and the textual projection of its content payload. Results are capped at
// SearchLimit and ordered by recency of change.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, term string, kind *domain.NodeKind, includeDeleted bool) ([]domain.Node, error) {
	pattern := "%" + term + "%"

	query := builder.
		Select(nodeColumns...).
		From("nodes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.Expr("content::text ILIKE ?", pattern),
		}).
		OrderBy("updated_at DESC").
		Limit(SearchLimit)
	if kind != nil {
		query = query.Where(sq.Eq{"kind": kind.String()})
	}
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	return r.selectNodes(ctx, query)
}

// Children returns the direct children of a node ordered by position
// ascending, ties broken by creation time descending.
func (r *Repo) Children(ctx context.Context, parentID uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	query := builder.
		Select(nodeColumns...).
		From("nodes").
		Where(sq.Eq{"parent_id": parentID}).
		OrderBy("position ASC", "created_at DESC")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	return r.selectNodes(ctx, query)
}

// Descendants returns the full transitive closure under the parent relation,
// excluding the root itself. The traversal is an iterative frontier
// expansion: each round fetches the children of every node discovered in the
// previous round with one batched query, and a visited set bounds the walk
// even if the stored tree were ever corrupted into a cycle. Ordering matches
// Children.
func (r *Repo) Descendants(ctx context.Context, rootID uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	var collected []nodeRow
	visited := map[uuid.UUID]struct{}{rootID: {}}
	frontier := []uuid.UUID{rootID}

	for len(frontier) > 0 {
		query := builder.
			Select(nodeColumns...).
			From("nodes").
			Where(sq.Eq{"parent_id": frontier})
		if !includeDeleted {
			query = query.Where("deleted_at IS NULL")
		}

		sql, args, err := query.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build descendants query: %w", err)
		}

		var batch []nodeRow
		q := postgres.QuerierFromCtx(ctx, r.pool)
		if err := pgxscan.Select(ctx, q, &batch, sql, args...); err != nil {
			return nil, fmt.Errorf("fetch descendants frontier: %w", err)
		}

		frontier = frontier[:0]
		for _, row := range batch {
			if _, seen := visited[row.ID]; seen {
				continue
			}
			visited[row.ID] = struct{}{}
			collected = append(collected, row)
			frontier = append(frontier, row.ID)
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		if collected[i].Position != collected[j].Position {
			return collected[i].Position < collected[j].Position
		}
		return collected[i].CreatedAt.After(collected[j].CreatedAt)
	})

	return toDomainNodes(collected), nil
}

// DescendantIDs returns the id set of all structural descendants of rootID,
// including soft-deleted ones (a deleted subtree still anchors the cycle
// invariant). Used by the move cycle check.
func (r *Repo) DescendantIDs(ctx context.Context, rootID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids := make(map[uuid.UUID]struct{})
	visited := map[uuid.UUID]struct{}{rootID: {}}
	frontier := []uuid.UUID{rootID}

	for len(frontier) > 0 {
		sql, args, err := builder.
			Select("id").
			From("nodes").
			Where(sq.Eq{"parent_id": frontier}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build descendant ids query: %w", err)
		}

		var batch []uuid.UUID
		q := postgres.QuerierFromCtx(ctx, r.pool)
		if err := pgxscan.Select(ctx, q, &batch, sql, args...); err != nil {
			return nil, fmt.Errorf("fetch descendant ids: %w", err)
		}

		frontier = frontier[:0]
		for _, id := range batch {
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			ids[id] = struct{}{}
			frontier = append(frontier, id)
		}
	}

	return ids, nil
}

// NextPosition computes the insertion position among the siblings under
// parentID (top-level siblings when parentID is nil): one greater than the
// current maximum, 0 when there are none.
func (r *Repo) NextPosition(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) (int, error) {
	query := builder.
		Select("COALESCE(MAX(position) + 1, 0)").
		From("nodes").
		Where(sq.Eq{"user_id": userID})
	if parentID != nil {
		query = query.Where(sq.Eq{"parent_id": *parentID})
	} else {
		query = query.Where("parent_id IS NULL")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build next position: %w", err)
	}

	var position int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&position); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	return position, nil
}

// ListReferencing returns the nodes that embed the given node through the
// node_references table.
func (r *Repo) ListReferencing(ctx context.Context, targetID uuid.UUID) ([]domain.Node, error) {
	query := builder.
		Select(qualify("n", nodeColumns)...).
		From("node_references nr").
		Join("nodes n ON n.id = nr.source_node_id").
		Where(sq.Eq{"nr.target_node_id": targetID}).
		OrderBy("nr.created_at DESC")

	return r.selectNodes(ctx, query)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectNodes(ctx context.Context, query sq.SelectBuilder) ([]domain.Node, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build node select: %w", err)
	}

	var rows []nodeRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select nodes: %w", err)
	}

	return toDomainNodes(rows), nil
}

func (r *Repo) getReturning(ctx context.Context, query sq.UpdateBuilder, nodeID uuid.UUID) (*domain.Node, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build node update: %w", err)
	}

	var row nodeRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "node", nodeID)
	}

	node := row.toDomain()
	return &node, nil
}

func (r *Repo) currentVersion(ctx context.Context, userID, nodeID uuid.UUID) (int, error) {
	sql, args, err := builder.
		Select("version").
		From("nodes").
		Where(sq.Eq{"id": nodeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build current version: %w", err)
	}

	var version int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&version); err != nil {
		return 0, postgres.MapError(err, "node", nodeID)
	}
	return version, nil
}

func columnList() string {
	out := ""
	for i, c := range nodeColumns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func qualify(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
