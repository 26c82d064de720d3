package tag

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	GetByIDFunc       func(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	UpdateFunc        func(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error)
	DeleteFunc        func(ctx context.Context, userID, tagID uuid.UUID) error
	EnsureByNamesFunc func(ctx context.Context, userID uuid.UUID, names []string) ([]domain.Tag, error)
	AttachFunc        func(ctx context.Context, nodeID, tagID uuid.UUID) error
	DetachFunc        func(ctx context.Context, nodeID, tagID uuid.UUID) error
	ListByNodeIDFunc  func(ctx context.Context, nodeID uuid.UUID) ([]domain.Tag, error)

	calls struct {
		Create        []struct{ T *domain.Tag }
		GetByID       []struct{ UserID, TagID uuid.UUID }
		List          []struct{ UserID uuid.UUID }
		Update        []struct {
			UserID uuid.UUID
			TagID  uuid.UUID
			Params domain.TagUpdateParams
		}
		Delete        []struct{ UserID, TagID uuid.UUID }
		EnsureByNames []struct {
			UserID uuid.UUID
			Names  []string
		}
		Attach       []struct{ NodeID, TagID uuid.UUID }
		Detach       []struct{ NodeID, TagID uuid.UUID }
		ListByNodeID []struct{ NodeID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ T *domain.Tag }{T: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tagRepoMock) CreateCalls() []struct{ T *domain.Tag } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tagRepoMock) GetByID(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ UserID, TagID uuid.UUID }{UserID: userID, TagID: tagID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, tagID)
}

func (mock *tagRepoMock) GetByIDCalls() []struct{ UserID, TagID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *tagRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *tagRepoMock) ListCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *tagRepoMock) Update(ctx context.Context, userID, tagID uuid.UUID, params domain.TagUpdateParams) (*domain.Tag, error) {
	if mock.UpdateFunc == nil {
		panic("tagRepoMock.UpdateFunc: method is nil but tagRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		TagID  uuid.UUID
		Params domain.TagUpdateParams
	}{UserID: userID, TagID: tagID, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, tagID, params)
}

func (mock *tagRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	TagID  uuid.UUID
	Params domain.TagUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *tagRepoMock) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ UserID, TagID uuid.UUID }{UserID: userID, TagID: tagID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, tagID)
}

func (mock *tagRepoMock) DeleteCalls() []struct{ UserID, TagID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
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

func (mock *tagRepoMock) Attach(ctx context.Context, nodeID, tagID uuid.UUID) error {
	if mock.AttachFunc == nil {
		panic("tagRepoMock.AttachFunc: method is nil but tagRepo.Attach was just called")
	}
	mock.lock.Lock()
	mock.calls.Attach = append(mock.calls.Attach, struct{ NodeID, TagID uuid.UUID }{NodeID: nodeID, TagID: tagID})
	mock.lock.Unlock()
	return mock.AttachFunc(ctx, nodeID, tagID)
}

func (mock *tagRepoMock) AttachCalls() []struct{ NodeID, TagID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Attach
}

func (mock *tagRepoMock) Detach(ctx context.Context, nodeID, tagID uuid.UUID) error {
	if mock.DetachFunc == nil {
		panic("tagRepoMock.DetachFunc: method is nil but tagRepo.Detach was just called")
	}
	mock.lock.Lock()
	mock.calls.Detach = append(mock.calls.Detach, struct{ NodeID, TagID uuid.UUID }{NodeID: nodeID, TagID: tagID})
	mock.lock.Unlock()
	return mock.DetachFunc(ctx, nodeID, tagID)
}

func (mock *tagRepoMock) DetachCalls() []struct{ NodeID, TagID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Detach
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

var _ nodeRepo = &nodeRepoMock{}

type nodeRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			NodeID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *nodeRepoMock) GetByID(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error) {
	if mock.GetByIDFunc == nil {
		panic("nodeRepoMock.GetByIDFunc: method is nil but nodeRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		NodeID uuid.UUID
	}{UserID: userID, NodeID: nodeID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, nodeID, includeDeleted)
}

func (mock *nodeRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	NodeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}
