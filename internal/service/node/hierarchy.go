package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Children returns a node's direct children ordered by position, ties broken
// by creation time descending.
func (s *Service) Children(ctx context.Context, input GetNodeInput) ([]domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, input.IncludeDeleted); err != nil {
		return nil, err
	}

	children, err := s.nodes.Children(ctx, input.NodeID, input.IncludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	if err := s.attachTags(ctx, children); err != nil {
		return nil, fmt.Errorf("load node tags: %w", err)
	}

	return children, nil
}

// Descendants returns the full subtree below a node, excluding the node
// itself.
func (s *Service) Descendants(ctx context.Context, input GetNodeInput) ([]domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, input.IncludeDeleted); err != nil {
		return nil, err
	}

	descendants, err := s.nodes.Descendants(ctx, input.NodeID, input.IncludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list descendants: %w", err)
	}

	if err := s.attachTags(ctx, descendants); err != nil {
		return nil, fmt.Errorf("load node tags: %w", err)
	}

	return descendants, nil
}

// Move reparents a node. The target parent must be owned and must not be
// the node itself or anything below it; moving under a descendant would cut
// the subtree loose as an unreachable cycle, so it is rejected with
// ErrInvalidOperation before any write. An omitted position appends the node
// after the target's existing children.
func (s *Service) Move(ctx context.Context, input MoveNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, false); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if *input.ParentID == input.NodeID {
			return nil, fmt.Errorf("node cannot be its own parent: %w", domain.ErrInvalidOperation)
		}
		if _, err := s.nodes.GetByID(ctx, userID, *input.ParentID, false); err != nil {
			return nil, fmt.Errorf("resolve target parent: %w", err)
		}

		descendants, err := s.nodes.DescendantIDs(ctx, input.NodeID)
		if err != nil {
			return nil, fmt.Errorf("collect descendants: %w", err)
		}
		if _, inSubtree := descendants[*input.ParentID]; inSubtree {
			return nil, fmt.Errorf("target parent is a descendant of the node: %w", domain.ErrInvalidOperation)
		}
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	} else {
		next, err := s.nodes.NextPosition(ctx, userID, input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("next position: %w", err)
		}
		position = next
	}

	moved, err := s.nodes.SetTreePosition(ctx, userID, input.NodeID, input.ParentID, position)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "node moved",
		slog.String("user_id", userID.String()),
		slog.String("node_id", moved.ID.String()),
		slog.Int("position", moved.Position),
	)

	return moved, nil
}

// Reorder changes a node's position among its current siblings.
func (s *Service) Reorder(ctx context.Context, input ReorderNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.SetPosition(ctx, userID, input.NodeID, input.Position)
	if err != nil {
		return nil, err
	}

	return node, nil
}
