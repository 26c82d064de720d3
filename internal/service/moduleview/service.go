// Package moduleview implements saved module views: CRUD over module
// definitions and the compiler that turns a module's declarative config into
// a safe, parameterized node query.
package moduleview

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type moduleRepo interface {
	Create(ctx context.Context, m *domain.Module) (*domain.Module, error)
	GetByID(ctx context.Context, userID, moduleID uuid.UUID) (*domain.Module, error)
	ListByZone(ctx context.Context, userID, zoneID uuid.UUID) ([]domain.Module, error)
	Update(ctx context.Context, userID, moduleID uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error)
	Delete(ctx context.Context, userID, moduleID uuid.UUID) error
}

type zoneRepo interface {
	GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error)
}

type nodeQuerier interface {
	FindByFilter(ctx context.Context, userID uuid.UUID, f domain.NodeFilter) ([]domain.Node, error)
}

type tagResolver interface {
	ResolveIDsByNames(ctx context.Context, userID uuid.UUID, names []string) ([]uuid.UUID, error)
}

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

// Service provides module management and query evaluation.
type Service struct {
	modules moduleRepo
	zones   zoneRepo
	nodes   nodeQuerier
	tags    tagResolver
	log     *slog.Logger
}

// NewService creates a new ModuleView service.
func NewService(
	log *slog.Logger,
	modules moduleRepo,
	zones zoneRepo,
	nodes nodeQuerier,
	tags tagResolver,
) *Service {
	return &Service{
		modules: modules,
		zones:   zones,
		nodes:   nodes,
		tags:    tags,
		log:     log.With("service", "moduleview"),
	}
}

// EvaluateResult is the outcome of running a module's query: the module
// itself, the matching nodes, their count and the names of the filter
// dimensions that actually applied.
type EvaluateResult struct {
	Module         *domain.Module
	Nodes          []domain.Node
	Total          int
	AppliedFilters []string
}
