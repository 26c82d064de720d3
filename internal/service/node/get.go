package node

import (
	"context"
	"fmt"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Get returns a node with its tags. Soft-deleted nodes are hidden unless
// IncludeDeleted is set.
func (s *Service) Get(ctx context.Context, input GetNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.GetByID(ctx, userID, input.NodeID, input.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.ListByNodeID(ctx, node.ID)
	if err != nil {
		return nil, fmt.Errorf("load node tags: %w", err)
	}
	node.Tags = tags

	return node, nil
}

// ListReferences returns the nodes that reference the given node.
func (s *Service) ListReferences(ctx context.Context, input GetNodeInput) ([]domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Confirm the target exists and is owned before exposing inbound links.
	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, input.IncludeDeleted); err != nil {
		return nil, err
	}

	return s.nodes.ListReferencing(ctx, input.NodeID)
}
