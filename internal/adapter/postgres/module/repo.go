// Package module implements the module repository using PostgreSQL.
// Module config blobs are stored as opaque jsonb; the query engine parses
// them at read time.
package module

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwalsh/lattice-backend/internal/adapter/postgres"
	"github.com/rwalsh/lattice-backend/internal/domain"
)

// Repo provides module persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new module repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const moduleColumns = "id, user_id, zone_id, name, reference_id, kind, config, grid_x, grid_y, grid_w, grid_h, created_at, updated_at"

type moduleRow struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	ZoneID      uuid.UUID       `db:"zone_id"`
	Name        string          `db:"name"`
	ReferenceID *string         `db:"reference_id"`
	Kind        string          `db:"kind"`
	Config      json.RawMessage `db:"config"`
	GridX       int             `db:"grid_x"`
	GridY       int             `db:"grid_y"`
	GridW       int             `db:"grid_w"`
	GridH       int             `db:"grid_h"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r moduleRow) toDomain() domain.Module {
	return domain.Module{
		ID:          r.ID,
		UserID:      r.UserID,
		ZoneID:      r.ZoneID,
		Name:        r.Name,
		ReferenceID: r.ReferenceID,
		Kind:        domain.ModuleKind(r.Kind),
		Config:      r.Config,
		GridX:       r.GridX,
		GridY:       r.GridY,
		GridW:       r.GridW,
		GridH:       r.GridH,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a new module.
// Returns domain.ErrNotFound if the zone does not exist.
func (r *Repo) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	config := m.Config
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}

	sql, args, err := builder.
		Insert("modules").
		Columns("id", "user_id", "zone_id", "name", "reference_id", "kind",
			"config", "grid_x", "grid_y", "grid_w", "grid_h").
		Values(m.ID, m.UserID, m.ZoneID, m.Name, m.ReferenceID, string(m.Kind),
			config, m.GridX, m.GridY, m.GridW, m.GridH).
		Suffix("RETURNING " + moduleColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create module: %w", err)
	}

	var row moduleRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", m.ID)
	}

	mod := row.toDomain()
	return &mod, nil
}

// GetByID returns an owner's module by primary key.
func (r *Repo) GetByID(ctx context.Context, userID, moduleID uuid.UUID) (*domain.Module, error) {
	sql, args, err := builder.
		Select(moduleColumns).
		From("modules").
		Where(sq.Eq{"id": moduleID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get module: %w", err)
	}

	var row moduleRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", moduleID)
	}

	mod := row.toDomain()
	return &mod, nil
}

// ListByZone returns a zone's modules ordered by creation time.
func (r *Repo) ListByZone(ctx context.Context, userID, zoneID uuid.UUID) ([]domain.Module, error) {
	sql, args, err := builder.
		Select(moduleColumns).
		From("modules").
		Where(sq.Eq{"user_id": userID, "zone_id": zoneID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list modules: %w", err)
	}

	var rows []moduleRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	modules := make([]domain.Module, len(rows))
	for i, row := range rows {
		modules[i] = row.toDomain()
	}
	return modules, nil
}

// Update changes module attributes per the patch semantics of
// domain.ModuleUpdateParams.
func (r *Repo) Update(ctx context.Context, userID, moduleID uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error) {
	update := builder.
		Update("modules").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": moduleID, "user_id": userID}).
		Suffix("RETURNING " + moduleColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Kind != nil {
		update = update.Set("kind", string(*params.Kind))
	}
	if params.Config != nil {
		update = update.Set("config", params.Config)
	}
	if params.GridX != nil {
		update = update.Set("grid_x", *params.GridX)
	}
	if params.GridY != nil {
		update = update.Set("grid_y", *params.GridY)
	}
	if params.GridW != nil {
		update = update.Set("grid_w", *params.GridW)
	}
	if params.GridH != nil {
		update = update.Set("grid_h", *params.GridH)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update module: %w", err)
	}

	var row moduleRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", moduleID)
	}

	mod := row.toDomain()
	return &mod, nil
}

// Delete removes a module.
func (r *Repo) Delete(ctx context.Context, userID, moduleID uuid.UUID) error {
	sql, args, err := builder.
		Delete("modules").
		Where(sq.Eq{"id": moduleID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete module: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "module", moduleID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("module %s: %w", moduleID, domain.ErrNotFound)
	}
	return nil
}
