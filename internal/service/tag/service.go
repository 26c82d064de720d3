// Package tag implements tag management and node-tag association use cases.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type tagRepo interface {
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	GetByID(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	Update(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error)
	Delete(ctx context.Context, userID, tagID uuid.UUID) error
	EnsureByNames(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error)
	Attach(ctx context.Context, nodeID, tagID uuid.UUID) error
	Detach(ctx context.Context, nodeID, tagID uuid.UUID) error
	ListByNodeID(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error)
}

type nodeRepo interface {
	GetByID(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error)
}

const (
	MaxTagNameLen = 100
	MaxBatchEnsure = 50
)

// Service provides tag management operations.
type Service struct {
	tags  tagRepo
	nodes nodeRepo
	log   *slog.Logger
}

// NewService creates a new Tag service.
func NewService(log *slog.Logger, tags tagRepo, nodes nodeRepo) *Service {
	return &Service{
		tags:  tags,
		nodes: nodes,
		log:   log.With("service", "tag"),
	}
}
