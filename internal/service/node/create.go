package node

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Create creates a new node for the authenticated user. The node is placed
// after the existing siblings under its parent (top level when ParentID is
// nil). Tags named in the input are created on demand and linked within the
// same transaction as the insert.
func (s *Service) Create(ctx context.Context, input CreateNodeInput) (*domain.Node, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.nodes.GetByID(ctx, userID, *input.ParentID, false); err != nil {
			return nil, fmt.Errorf("resolve parent: %w", err)
		}
	}

	position, err := s.nodes.NextPosition(ctx, userID, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("next position: %w", err)
	}

	node := &domain.Node{
		ID:          uuid.New(),
		UserID:      userID,
		ParentID:    input.ParentID,
		Name:        strings.TrimSpace(input.Name),
		Kind:        domain.NodeKind(input.Kind),
		Color:       input.Color,
		ReferenceID: input.ReferenceID,
		Content:     input.Content,
		Metadata:    input.Metadata,
		Position:    position,
	}
	if input.CanvasX != nil {
		node.CanvasX = *input.CanvasX
	}
	if input.CanvasY != nil {
		node.CanvasY = *input.CanvasY
	}

	tagNames := normalizeTagNames(input.Tags)

	var created *domain.Node
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.nodes.Create(txCtx, node)
		if createErr != nil {
			return fmt.Errorf("create node: %w", createErr)
		}

		if len(tagNames) == 0 {
			return nil
		}

		tags, ensureErr := s.tags.EnsureByNames(txCtx, userID, tagNames)
		if ensureErr != nil {
			return fmt.Errorf("ensure tags: %w", ensureErr)
		}
		if linkErr := s.tags.ReplaceNodeAssociations(txCtx, created.ID, tagIDs(tags)); linkErr != nil {
			return fmt.Errorf("link tags: %w", linkErr)
		}
		created.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "node created",
		slog.String("user_id", userID.String()),
		slog.String("node_id", created.ID.String()),
		slog.String("kind", created.Kind.String()),
	)

	return created, nil
}
