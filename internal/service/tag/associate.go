package tag

import (
	"context"
	"fmt"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Attach links a tag to a node. Both must belong to the user. Attaching an
// already linked pair is a no-op, not an error.
func (s *Service) Attach(ctx context.Context, input AssociationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, false); err != nil {
		return fmt.Errorf("resolve node: %w", err)
	}
	if _, err := s.tags.GetByID(ctx, userID, input.TagID); err != nil {
		return fmt.Errorf("resolve tag: %w", err)
	}

	return s.tags.Attach(ctx, input.NodeID, input.TagID)
}

// Detach unlinks a tag from a node. Detaching a pair that is not linked is a
// no-op.
func (s *Service) Detach(ctx context.Context, input AssociationInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.nodes.GetByID(ctx, userID, input.NodeID, false); err != nil {
		return fmt.Errorf("resolve node: %w", err)
	}

	return s.tags.Detach(ctx, input.NodeID, input.TagID)
}
