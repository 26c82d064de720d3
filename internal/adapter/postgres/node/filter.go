package node

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// FindByFilter executes a compiled node filter. Every predicate value,
// including content payload keys, is bound as a statement parameter. The
// owner scope and the live-rows predicate are always applied here and cannot
// be disabled by the filter (IncludeDeleted only widens the latter).
func (r *Repo) FindByFilter(ctx context.Context, userID uuid.UUID, f domain.NodeFilter) ([]domain.Node, error) {
	query := builder.
		Select(qualify("n", nodeColumns)...).
		From("nodes n").
		Where(sq.Eq{"n.user_id": userID})

	if !f.IncludeDeleted {
		query = query.Where("n.deleted_at IS NULL")
	}

	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = k.String()
		}
		query = query.Where(sq.Eq{"n.kind": kinds})
	}

	switch {
	case f.ParentID != nil:
		query = query.Where(sq.Eq{"n.parent_id": *f.ParentID})
	case f.TopLevelOnly:
		query = query.Where("n.parent_id IS NULL")
	}

	if f.DateFrom != nil || f.DateTo != nil {
		col := "n.created_at"
		if f.DateField == domain.DateFieldUpdatedAt {
			col = "n.updated_at"
		}
		if f.DateFrom != nil {
			query = query.Where(sq.GtOrEq{col: *f.DateFrom})
		}
		if f.DateTo != nil {
			query = query.Where(sq.LtOrEq{col: *f.DateTo})
		}
	}

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"n.name": pattern},
			sq.Expr("n.content::text ILIKE ?", pattern),
		})
	}

	for _, cf := range f.Custom {
		if cf.Eq != nil {
			query = query.Where(sq.Expr("n.content ->> ? = ?", cf.Key, *cf.Eq))
		}
		if cf.GTE != nil {
			query = query.Where(sq.Expr("(n.content ->> ?)::numeric >= ?", cf.Key, *cf.GTE))
		}
		if cf.LTE != nil {
			query = query.Where(sq.Expr("(n.content ->> ?)::numeric <= ?", cf.Key, *cf.LTE))
		}
	}

	if len(f.TagIDs) > 0 {
		query = query.
			Join("node_tags nt ON nt.node_id = n.id").
			Where(sq.Eq{"nt.tag_id": f.TagIDs}).
			Distinct()
	}

	query = query.OrderBy(orderClause(f.SortBy, f.SortOrder))
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	return r.selectNodes(ctx, query)
}

func orderClause(field domain.SortField, order domain.SortOrder) string {
	col := "n.created_at"
	switch field {
	case domain.SortByUpdatedAt:
		col = "n.updated_at"
	case domain.SortByName:
		col = "n.name"
	}

	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}
