// Package node implements the node use cases: CRUD with optimistic
// versioning, hierarchy traversal and reorganization, and tag assignment.
package node

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type nodeRepo interface {
	Create(ctx context.Context, n *domain.Node) (*domain.Node, error)
	GetByID(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error)
	List(ctx context.Context, userID uuid.UUID, limit int, cursor *uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	Search(ctx context.Context, userID uuid.UUID, term string, kind *domain.NodeKind, includeDeleted bool) ([]domain.Node, error)
	Update(ctx context.Context, userID, nodeID uuid.UUID, expectedVersion int, params domain.NodeUpdateParams) (*domain.Node, error)
	Delete(ctx context.Context, userID, nodeID uuid.UUID) error
	SoftDelete(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error)
	Restore(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error)

	Children(ctx context.Context, parentID uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	Descendants(ctx context.Context, rootID uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	DescendantIDs(ctx context.Context, rootID uuid.UUID) (map[uuid.UUID]struct{}, error)
	NextPosition(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) (int, error)
	SetTreePosition(ctx context.Context, userID, nodeID uuid.UUID, parentID *uuid.UUID, position int) (*domain.Node, error)
	SetPosition(ctx context.Context, userID, nodeID uuid.UUID, position int) (*domain.Node, error)

	ListReferencing(ctx context.Context, targetID uuid.UUID) ([]domain.Node, error)
}

type tagRepo interface {
	EnsureByNames(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error)
	ReplaceNodeAssociations(ctx context.Context, nodeID uuid.UUID, tagIDs []uuid.UUID) error
	ListByNodeID(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error)
	ListByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLen = 255

	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service provides node management operations.
type Service struct {
	nodes nodeRepo
	tags  tagRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Node service.
func NewService(
	log *slog.Logger,
	nodes nodeRepo,
	tags tagRepo,
	tx txManager,
) *Service {
	return &Service{
		nodes: nodes,
		tags:  tags,
		tx:    tx,
		log:   log.With("service", "node"),
	}
}

// normalizeTagNames trims, drops empties and dedupes while keeping order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func tagIDs(tags []domain.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}

// attachTags loads and sets tags for a batch of nodes in one query.
func (s *Service) attachTags(ctx context.Context, nodes []domain.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	byNode, err := s.tags.ListByNodeIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range nodes {
		nodes[i].Tags = byNode[nodes[i].ID]
	}
	return nil
}
