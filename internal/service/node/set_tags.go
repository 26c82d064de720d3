package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// SetTags replaces a node's tag set with the named tags, creating missing
// ones on demand. The whole replacement runs in one transaction so readers
// never observe the half-cleared state. An empty list detaches everything.
func (s *Service) SetTags(ctx context.Context, input SetNodeTagsInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.GetByID(ctx, userID, input.NodeID, false)
	if err != nil {
		return nil, err
	}

	names := normalizeTagNames(input.Tags)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tags, ensureErr := s.tags.EnsureByNames(txCtx, userID, names)
		if ensureErr != nil {
			return fmt.Errorf("ensure tags: %w", ensureErr)
		}
		if linkErr := s.tags.ReplaceNodeAssociations(txCtx, node.ID, tagIDs(tags)); linkErr != nil {
			return fmt.Errorf("replace tags: %w", linkErr)
		}
		node.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "node tags replaced",
		slog.String("user_id", userID.String()),
		slog.String("node_id", node.ID.String()),
		slog.Int("tags", len(node.Tags)),
	)

	return node, nil
}
