package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Update applies a partial patch to a node guarded by the optimistic
// version token. When the stored version no longer matches
// input.ExpectedVersion the update is rejected with a VersionConflictError
// carrying the current version and nothing is written. A non-nil Tags slice
// replaces the node's tag set in the same transaction.
func (s *Service) Update(ctx context.Context, input UpdateNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.NodeUpdateParams{
		Name:     input.Name,
		Color:    input.Color,
		Content:  input.Content,
		Metadata: input.Metadata,
		CanvasX:  input.CanvasX,
		CanvasY:  input.CanvasY,
	}

	var updated *domain.Node
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		if params.IsEmpty() {
			// Tag-only patch: the tag replacement below is the mutation, but
			// the version guard must still hold and the version still bumps.
			updated, updateErr = s.nodes.Update(txCtx, userID, input.NodeID, input.ExpectedVersion,
				domain.NodeUpdateParams{})
		} else {
			updated, updateErr = s.nodes.Update(txCtx, userID, input.NodeID, input.ExpectedVersion, params)
		}
		if updateErr != nil {
			return updateErr
		}

		if input.Tags == nil {
			return nil
		}

		names := normalizeTagNames(*input.Tags)
		tags, ensureErr := s.tags.EnsureByNames(txCtx, userID, names)
		if ensureErr != nil {
			return fmt.Errorf("ensure tags: %w", ensureErr)
		}
		if linkErr := s.tags.ReplaceNodeAssociations(txCtx, updated.ID, tagIDs(tags)); linkErr != nil {
			return fmt.Errorf("replace tags: %w", linkErr)
		}
		updated.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Tags == nil {
		tags, err := s.tags.ListByNodeID(ctx, updated.ID)
		if err != nil {
			return nil, fmt.Errorf("load node tags: %w", err)
		}
		updated.Tags = tags
	}

	s.log.InfoContext(ctx, "node updated",
		slog.String("user_id", userID.String()),
		slog.String("node_id", updated.ID.String()),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}
