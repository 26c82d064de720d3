package zone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Create appends a new zone at the end of the owner's list. When the new zone
// is the default, the previous default loses the flag in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateZoneInput) (*domain.Zone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	position, err := s.zones.NextPosition(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("next zone position: %w", err)
	}

	zone := &domain.Zone{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		ReferenceID: input.ReferenceID,
		Color:       input.Color,
		Icon:        input.Icon,
		Position:    position,
		IsDefault:   input.IsDefault,
	}

	var created *domain.Zone
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.IsDefault {
			if err := s.zones.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}
		created, err = s.zones.Create(ctx, zone)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}

	s.log.InfoContext(ctx, "zone created",
		slog.String("user_id", userID.String()),
		slog.String("zone_id", created.ID.String()),
		slog.Int("position", created.Position),
	)

	return created, nil
}

// Get returns a single zone owned by the calling user.
func (s *Service) Get(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if zoneID == uuid.Nil {
		return nil, domain.NewValidationError("zone_id", "required")
	}

	return s.zones.GetByID(ctx, userID, zoneID)
}

// List returns the owner's zones in position order.
func (s *Service) List(ctx context.Context) ([]domain.Zone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.zones.List(ctx, userID)
}

// Update applies a partial patch to a zone's attributes.
func (s *Service) Update(ctx context.Context, input UpdateZoneInput) (*domain.Zone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := input.Name
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		name = &trimmed
	}

	updated, err := s.zones.Update(ctx, userID, input.ZoneID, name, input.Color, input.Icon)
	if err != nil {
		return nil, fmt.Errorf("update zone: %w", err)
	}

	s.log.InfoContext(ctx, "zone updated",
		slog.String("user_id", userID.String()),
		slog.String("zone_id", updated.ID.String()),
	)

	return updated, nil
}

// SetDefault makes one zone the owner's default, demoting the previous
// default atomically.
func (s *Service) SetDefault(ctx context.Context, zoneID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if zoneID == uuid.Nil {
		return domain.NewValidationError("zone_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.zones.ClearDefault(ctx, userID); err != nil {
			return err
		}
		return s.zones.MarkDefault(ctx, userID, zoneID)
	})
	if err != nil {
		return fmt.Errorf("set default zone: %w", err)
	}

	s.log.InfoContext(ctx, "default zone changed",
		slog.String("user_id", userID.String()),
		slog.String("zone_id", zoneID.String()),
	)

	return nil
}

// Delete removes a zone. Its modules go with it via the cascade.
func (s *Service) Delete(ctx context.Context, zoneID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if zoneID == uuid.Nil {
		return domain.NewValidationError("zone_id", "required")
	}

	if err := s.zones.Delete(ctx, userID, zoneID); err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}

	s.log.InfoContext(ctx, "zone deleted",
		slog.String("user_id", userID.String()),
		slog.String("zone_id", zoneID.String()),
	)

	return nil
}

// Reorder assigns new positions to the listed zones in one transaction.
// A single unknown or foreign zone fails the whole batch.
func (s *Service) Reorder(ctx context.Context, input ReorderZonesInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, item := range input.Items {
			if err := s.zones.SetPosition(ctx, userID, item.ID, item.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reorder zones: %w", err)
	}

	s.log.InfoContext(ctx, "zones reordered",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(input.Items)),
	)

	return nil
}
