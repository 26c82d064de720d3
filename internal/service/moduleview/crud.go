package moduleview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Create validates and stores a new module. The config is compiled up front
// so a module can never be saved with a blob that would fail at evaluation.
func (s *Service) Create(ctx context.Context, input CreateModuleInput) (*domain.Module, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.zones.GetByID(ctx, userID, input.ZoneID); err != nil {
		return nil, fmt.Errorf("check zone: %w", err)
	}

	if _, err := ParseConfig(input.Config); err != nil {
		return nil, err
	}

	module := &domain.Module{
		ID:          uuid.New(),
		UserID:      userID,
		ZoneID:      input.ZoneID,
		Name:        strings.TrimSpace(input.Name),
		ReferenceID: input.ReferenceID,
		Kind:        domain.ModuleKind(input.Kind),
		Config:      input.Config,
		GridX:       input.GridX,
		GridY:       input.GridY,
		GridW:       input.GridW,
		GridH:       input.GridH,
	}

	created, err := s.modules.Create(ctx, module)
	if err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}

	s.log.InfoContext(ctx, "module created",
		slog.String("user_id", userID.String()),
		slog.String("module_id", created.ID.String()),
		slog.String("zone_id", created.ZoneID.String()),
		slog.String("kind", string(created.Kind)),
	)

	return created, nil
}

// Get returns a single module owned by the calling user.
func (s *Service) Get(ctx context.Context, moduleID uuid.UUID) (*domain.Module, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if moduleID == uuid.Nil {
		return nil, domain.NewValidationError("module_id", "required")
	}

	return s.modules.GetByID(ctx, userID, moduleID)
}

// ListByZone returns the zone's modules in creation order. The zone lookup
// doubles as the ownership check.
func (s *Service) ListByZone(ctx context.Context, zoneID uuid.UUID) ([]domain.Module, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if zoneID == uuid.Nil {
		return nil, domain.NewValidationError("zone_id", "required")
	}

	if _, err := s.zones.GetByID(ctx, userID, zoneID); err != nil {
		return nil, fmt.Errorf("check zone: %w", err)
	}

	return s.modules.ListByZone(ctx, userID, zoneID)
}

// Update applies a partial patch to a module. A new config is compiled before
// it replaces the stored one.
func (s *Service) Update(ctx context.Context, input UpdateModuleInput) (*domain.Module, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Config != nil {
		if _, err := ParseConfig(input.Config); err != nil {
			return nil, err
		}
	}

	params := domain.ModuleUpdateParams{
		Config: input.Config,
		GridX:  input.GridX,
		GridY:  input.GridY,
		GridW:  input.GridW,
		GridH:  input.GridH,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Kind != nil {
		kind := domain.ModuleKind(*input.Kind)
		params.Kind = &kind
	}

	updated, err := s.modules.Update(ctx, userID, input.ModuleID, params)
	if err != nil {
		return nil, fmt.Errorf("update module: %w", err)
	}

	s.log.InfoContext(ctx, "module updated",
		slog.String("user_id", userID.String()),
		slog.String("module_id", updated.ID.String()),
	)

	return updated, nil
}

// Delete removes a module.
func (s *Service) Delete(ctx context.Context, moduleID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if moduleID == uuid.Nil {
		return domain.NewValidationError("module_id", "required")
	}

	if err := s.modules.Delete(ctx, userID, moduleID); err != nil {
		return fmt.Errorf("delete module: %w", err)
	}

	s.log.InfoContext(ctx, "module deleted",
		slog.String("user_id", userID.String()),
		slog.String("module_id", moduleID.String()),
	)

	return nil
}
