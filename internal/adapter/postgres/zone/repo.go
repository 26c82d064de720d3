// Package zone implements the zone repository using PostgreSQL.
package zone

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

// Repo provides zone persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new zone repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const zoneColumns = "id, user_id, name, reference_id, color, icon, position, is_default, created_at, updated_at"

type zoneRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Name        string     `db:"name"`
	ReferenceID *string    `db:"reference_id"`
	Color       *string    `db:"color"`
	Icon        *string    `db:"icon"`
	Position    int        `db:"position"`
	IsDefault   bool       `db:"is_default"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r zoneRow) toDomain() domain.Zone {
	return domain.Zone{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		ReferenceID: r.ReferenceID,
		Color:       r.Color,
		Icon:        r.Icon,
		Position:    r.Position,
		IsDefault:   r.IsDefault,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a new zone.
func (r *Repo) Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	sql, args, err := builder.
		Insert("zones").
		Columns("id", "user_id", "name", "reference_id", "color", "icon", "position", "is_default").
		Values(z.ID, z.UserID, z.Name, z.ReferenceID, z.Color, z.Icon, z.Position, z.IsDefault).
		Suffix("RETURNING " + zoneColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create zone: %w", err)
	}

	var row zoneRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "zone", z.ID)
	}

	zone := row.toDomain()
	return &zone, nil
}

// GetByID returns an owner's zone by primary key.
func (r *Repo) GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error) {
	sql, args, err := builder.
		Select(zoneColumns).
		From("zones").
		Where(sq.Eq{"id": zoneID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get zone: %w", err)
	}

	var row zoneRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "zone", zoneID)
	}

	zone := row.toDomain()
	return &zone, nil
}

// List returns all of an owner's zones ordered by position.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Zone, error) {
	sql, args, err := builder.
		Select(zoneColumns).
		From("zones").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list zones: %w", err)
	}

	var rows []zoneRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	zones := make([]domain.Zone, len(rows))
	for i, row := range rows {
		zones[i] = row.toDomain()
	}
	return zones, nil
}

// Update changes zone attributes. nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, userID, zoneID uuid.UUID, name, color, icon *string) (*domain.Zone, error) {
	update := builder.
		Update("zones").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": zoneID, "user_id": userID}).
		Suffix("RETURNING " + zoneColumns)

	if name != nil {
		update = update.Set("name", *name)
	}
	if color != nil {
		update = update.Set("color", *color)
	}
	if icon != nil {
		update = update.Set("icon", *icon)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update zone: %w", err)
	}

	var row zoneRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "zone", zoneID)
	}

	zone := row.toDomain()
	return &zone, nil
}

// SetPosition updates a single zone's position. Used by the batch reorder,
// which wraps one call per zone in a transaction.
func (r *Repo) SetPosition(ctx context.Context, userID, zoneID uuid.UUID, position int) error {
	sql, args, err := builder.
		Update("zones").
		Set("position", position).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": zoneID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reorder zone: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "zone", zoneID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a zone and, via cascade, its modules.
func (r *Repo) Delete(ctx context.Context, userID, zoneID uuid.UUID) error {
	sql, args, err := builder.
		Delete("zones").
		Where(sq.Eq{"id": zoneID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete zone: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "zone", zoneID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, domain.ErrNotFound)
	}
	return nil
}

// ClearDefault unsets the owner's current default zone. Affecting zero rows
// is fine: the owner may have no default yet.
func (r *Repo) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := builder.
		Update("zones").
		Set("is_default", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "is_default": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear default zone: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear default zone: %w", err)
	}
	return nil
}

// MarkDefault flags one zone as the owner's default. The caller clears the
// previous default in the same transaction.
func (r *Repo) MarkDefault(ctx context.Context, userID, zoneID uuid.UUID) error {
	sql, args, err := builder.
		Update("zones").
		Set("is_default", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": zoneID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark default zone: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "zone", zoneID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, domain.ErrNotFound)
	}
	return nil
}

// NextPosition computes the append position for a new zone.
func (r *Repo) NextPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := builder.
		Select("COALESCE(MAX(position) + 1, 0)").
		From("zones").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build zone next position: %w", err)
	}

	var position int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&position); err != nil {
		return 0, fmt.Errorf("zone next position: %w", err)
	}
	return position, nil
}
