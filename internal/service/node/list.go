package node

import (
	"context"
	"fmt"
	"strings"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// List returns one page of the user's nodes ordered by creation time
// descending. The cursor continues strictly after the named node, which
// keeps pages stable when new nodes are inserted mid-pagination.
func (s *Service) List(ctx context.Context, input ListNodesInput) (*NodePage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	// Fetch one extra row to learn whether a next page exists.
	nodes, err := s.nodes.List(ctx, userID, limit+1, input.Cursor, input.IncludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	page := &NodePage{Nodes: nodes}
	if len(nodes) > limit {
		page.Nodes = nodes[:limit]
		page.HasMore = true
		last := page.Nodes[len(page.Nodes)-1].ID
		page.NextCursor = &last
	}

	if err := s.attachTags(ctx, page.Nodes); err != nil {
		return nil, fmt.Errorf("load node tags: %w", err)
	}

	return page, nil
}

// Search finds nodes whose name or content matches the query substring,
// newest changes first.
func (s *Service) Search(ctx context.Context, input SearchNodesInput) ([]domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var kind *domain.NodeKind
	if input.Kind != nil {
		k := domain.NodeKind(*input.Kind)
		kind = &k
	}

	nodes, err := s.nodes.Search(ctx, userID, strings.TrimSpace(input.Query), kind, input.IncludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("search nodes: %w", err)
	}

	if err := s.attachTags(ctx, nodes); err != nil {
		return nil, fmt.Errorf("load node tags: %w", err)
	}

	return nodes, nil
}
