package node

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	EnsureByNamesFunc           func(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error)
	ReplaceNodeAssociationsFunc func(ctx context.Context, nodeID uuid.UUID, tagIDs []uuid.UUID) error
	ListByNodeIDFunc            func(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error)
	ListByNodeIDsFunc           func(ctx context.Context, nodeIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)

	calls struct {
		EnsureByNames []struct {
			UserID uuid.UUID
			Names  []string
		}
		ReplaceNodeAssociations []struct {
			NodeID uuid.UUID
			TagIDs []uuid.UUID
		}
		ListByNodeID []struct {
			NodeID uuid.UUID
		}
		ListByNodeIDs []struct {
			NodeIDs []uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) EnsureByNames(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error) {
	if mock.EnsureByNamesFunc == nil {
		panic("tagRepoMock.EnsureByNamesFunc: method is nil but tagRepo.EnsureByNames was just called")
	}
	mock.lock.Lock()
	mock.calls.EnsureByNames = append(mock.calls.EnsureByNames, struct {
		UserID uuid.UUID
		Names  []string
	}{UserID: userID, Names: names})
	mock.lock.Unlock()
	return mock.EnsureByNamesFunc(ctx, userID, names)
}

func (mock *tagRepoMock) EnsureByNamesCalls() []struct {
	UserID uuid.UUID
	Names  []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EnsureByNames
}

func (mock *tagRepoMock) ReplaceNodeAssociations(ctx context.Context, nodeID uuid.UUID, tagIDs []uuid.UUID) error {
	if mock.ReplaceNodeAssociationsFunc == nil {
		panic("tagRepoMock.ReplaceNodeAssociationsFunc: method is nil but tagRepo.ReplaceNodeAssociations was just called")
	}
	mock.lock.Lock()
	mock.calls.ReplaceNodeAssociations = append(mock.calls.ReplaceNodeAssociations, struct {
		NodeID uuid.UUID
		TagIDs []uuid.UUID
	}{NodeID: nodeID, TagIDs: tagIDs})
	mock.lock.Unlock()
	return mock.ReplaceNodeAssociationsFunc(ctx, nodeID, tagIDs)
}

func (mock *tagRepoMock) ReplaceNodeAssociationsCalls() []struct {
	NodeID uuid.UUID
	TagIDs []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ReplaceNodeAssociations
}

func (mock *tagRepoMock) ListByNodeID(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error) {
	if mock.ListByNodeIDFunc == nil {
		panic("tagRepoMock.ListByNodeIDFunc: method is nil but tagRepo.ListByNodeID was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByNodeID = append(mock.calls.ListByNodeID, struct{ NodeID uuid.UUID }{NodeID: nodeID})
	mock.lock.Unlock()
	return mock.ListByNodeIDFunc(ctx, nodeID)
}

func (mock *tagRepoMock) ListByNodeIDCalls() []struct{ NodeID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByNodeID
}

func (mock *tagRepoMock) ListByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	if mock.ListByNodeIDsFunc == nil {
		panic("tagRepoMock.ListByNodeIDsFunc: method is nil but tagRepo.ListByNodeIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByNodeIDs = append(mock.calls.ListByNodeIDs, struct{ NodeIDs []uuid.UUID }{NodeIDs: nodeIDs})
	mock.lock.Unlock()
	return mock.ListByNodeIDsFunc(ctx, nodeIDs)
}

func (mock *tagRepoMock) ListByNodeIDsCalls() []struct{ NodeIDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByNodeIDs
}
