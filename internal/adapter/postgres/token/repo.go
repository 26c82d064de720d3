// Package token implements the refresh token repository using PostgreSQL.
package token

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

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tokenColumns = "id, user_id, token_hash, expires_at, created_at, revoked_at"

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r tokenRow) toDomain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	sql, args, err := builder.
		Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt).
		Suffix("RETURNING " + tokenColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create refresh token: %w", err)
	}

	var row tokenRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh token", t.ID)
	}

	token := row.toDomain()
	return &token, nil
}

// GetByHash returns a refresh token by its hash, revoked or not. The caller
// decides whether the token is still usable.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	sql, args, err := builder.
		Select(tokenColumns).
		From("refresh_tokens").
		Where(sq.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get refresh token: %w", err)
	}

	var row tokenRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	token := row.toDomain()
	return &token, nil
}

// Revoke marks a single token as revoked. Revoking an already revoked token
// is a no-op.
func (r *Repo) Revoke(ctx context.Context, hash string) error {
	sql, args, err := builder.
		Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"token_hash": hash, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh token: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllForUser invalidates every live token of one user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := builder.
		Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke user tokens: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry. Returns the number removed.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := builder.
		Delete("refresh_tokens").
		Where(sq.Expr("expires_at < now()")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired tokens: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return ct.RowsAffected(), nil
}
