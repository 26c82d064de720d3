// Package zone implements workspace zone management: CRUD, ordering and the
// single-default invariant.
package zone

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type zoneRepo interface {
	Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error)
	GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Zone, error)
	Update(ctx context.Context, userID, zoneID uuid.UUID, name, color, icon *string) (*domain.Zone, error)
	SetPosition(ctx context.Context, userID, zoneID uuid.UUID, position int) error
	ClearDefault(ctx context.Context, userID uuid.UUID) error
	MarkDefault(ctx context.Context, userID, zoneID uuid.UUID) error
	Delete(ctx context.Context, userID, zoneID uuid.UUID) error
	NextPosition(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxZoneNameLen  = 255
	MaxReorderBatch = 100
)

// Service provides zone use cases.
type Service struct {
	zones zoneRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Zone service.
func NewService(log *slog.Logger, zones zoneRepo, tx txManager) *Service {
	return &Service{
		zones: zones,
		tx:    tx,
		log:   log.With("service", "zone"),
	}
}
