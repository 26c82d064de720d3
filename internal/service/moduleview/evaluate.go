package moduleview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Evaluate runs a saved module's query and returns the matching nodes.
func (s *Service) Evaluate(ctx context.Context, moduleID uuid.UUID) (*EvaluateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if moduleID == uuid.Nil {
		return nil, domain.NewValidationError("module_id", "required")
	}

	module, err := s.modules.GetByID(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluateConfig(ctx, userID, module.Config)
	if err != nil {
		return nil, err
	}
	result.Module = module

	s.log.InfoContext(ctx, "module evaluated",
		slog.String("user_id", userID.String()),
		slog.String("module_id", module.ID.String()),
		slog.Int("total", result.Total),
	)

	return result, nil
}

// EvaluateConfig runs an ad-hoc config without a saved module. Used for
// view previews before the module is stored.
func (s *Service) EvaluateConfig(ctx context.Context, raw json.RawMessage) (*EvaluateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.evaluateConfig(ctx, userID, raw)
}

func (s *Service) evaluateConfig(ctx context.Context, userID uuid.UUID, raw json.RawMessage) (*EvaluateResult, error) {
	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, err
	}

	var tagIDs []uuid.UUID
	if len(cfg.TagNames) > 0 {
		tagIDs, err = s.tags.ResolveIDsByNames(ctx, userID, cfg.TagNames)
		if err != nil {
			return nil, fmt.Errorf("resolve tags: %w", err)
		}
		// A filter naming only nonexistent tags can match nothing; skip
		// the query entirely.
		if len(tagIDs) == 0 {
			return &EvaluateResult{
				Nodes:          []domain.Node{},
				AppliedFilters: cfg.Applied,
			}, nil
		}
	}

	nodes, err := s.nodes.FindByFilter(ctx, userID, cfg.toNodeFilter(tagIDs))
	if err != nil {
		return nil, fmt.Errorf("evaluate filter: %w", err)
	}

	return &EvaluateResult{
		Nodes:          nodes,
		Total:          len(nodes),
		AppliedFilters: cfg.Applied,
	}, nil
}
