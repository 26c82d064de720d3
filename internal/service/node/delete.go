package node

import (
	"context"
	"log/slog"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Delete removes a node permanently. The database cascades the removal to
// every descendant, tag association and node reference in the same
// statement, so no partial trees survive.
func (s *Service) Delete(ctx context.Context, input DeleteNodeInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.nodes.Delete(ctx, userID, input.NodeID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "node deleted",
		slog.String("user_id", userID.String()),
		slog.String("node_id", input.NodeID.String()),
	)

	return nil
}

// SoftDelete hides a node without removing it. The node keeps its place in
// the tree and can be brought back with Restore.
func (s *Service) SoftDelete(ctx context.Context, input DeleteNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.SoftDelete(ctx, userID, input.NodeID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "node soft-deleted",
		slog.String("user_id", userID.String()),
		slog.String("node_id", node.ID.String()),
	)

	return node, nil
}

// Restore clears the soft-delete mark on a node.
func (s *Service) Restore(ctx context.Context, input DeleteNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.Restore(ctx, userID, input.NodeID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "node restored",
		slog.String("user_id", userID.String()),
		slog.String("node_id", node.ID.String()),
	)

	return node, nil
}
