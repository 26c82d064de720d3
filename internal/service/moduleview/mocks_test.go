package moduleview

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ moduleRepo = &moduleRepoMock{}

type moduleRepoMock struct {
	CreateFunc     func(ctx context.Context, m *domain.Module) (*domain.Module, error)
	GetByIDFunc    func(ctx context.Context, userID, moduleID uuid.UUID) (*domain.Module, error)
	ListByZoneFunc func(ctx context.Context, userID, zoneID uuid.UUID) ([]domain.Module, error)
	UpdateFunc     func(ctx context.Context, userID, moduleID uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error)
	DeleteFunc     func(ctx context.Context, userID, moduleID uuid.UUID) error

	calls struct {
		Create []struct {
			M *domain.Module
		}
		GetByID []struct {
			UserID   uuid.UUID
			ModuleID uuid.UUID
		}
		ListByZone []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
		}
		Update []struct {
			UserID   uuid.UUID
			ModuleID uuid.UUID
			Params   domain.ModuleUpdateParams
		}
		Delete []struct {
			UserID   uuid.UUID
			ModuleID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *moduleRepoMock) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	if mock.CreateFunc == nil {
		panic("moduleRepoMock.CreateFunc: method is nil but moduleRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		M *domain.Module
	}{M: m})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *moduleRepoMock) CreateCalls() []struct {
	M *domain.Module
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *moduleRepoMock) GetByID(ctx context.Context, userID, moduleID uuid.UUID) (*domain.Module, error) {
	if mock.GetByIDFunc == nil {
		panic("moduleRepoMock.GetByIDFunc: method is nil but moduleRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID   uuid.UUID
		ModuleID uuid.UUID
	}{UserID: userID, ModuleID: moduleID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, moduleID)
}

func (mock *moduleRepoMock) GetByIDCalls() []struct {
	UserID   uuid.UUID
	ModuleID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *moduleRepoMock) ListByZone(ctx context.Context, userID, zoneID uuid.UUID) ([]domain.Module, error) {
	if mock.ListByZoneFunc == nil {
		panic("moduleRepoMock.ListByZoneFunc: method is nil but moduleRepo.ListByZone was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByZone = append(mock.calls.ListByZone, struct {
		UserID uuid.UUID
		ZoneID uuid.UUID
	}{UserID: userID, ZoneID: zoneID})
	mock.lock.Unlock()
	return mock.ListByZoneFunc(ctx, userID, zoneID)
}

func (mock *moduleRepoMock) ListByZoneCalls() []struct {
	UserID uuid.UUID
	ZoneID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByZone
}

func (mock *moduleRepoMock) Update(ctx context.Context, userID, moduleID uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error) {
	if mock.UpdateFunc == nil {
		panic("moduleRepoMock.UpdateFunc: method is nil but moduleRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID   uuid.UUID
		ModuleID uuid.UUID
		Params   domain.ModuleUpdateParams
	}{UserID: userID, ModuleID: moduleID, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, moduleID, params)
}

func (mock *moduleRepoMock) UpdateCalls() []struct {
	UserID   uuid.UUID
	ModuleID uuid.UUID
	Params   domain.ModuleUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *moduleRepoMock) Delete(ctx context.Context, userID, moduleID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("moduleRepoMock.DeleteFunc: method is nil but moduleRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID   uuid.UUID
		ModuleID uuid.UUID
	}{UserID: userID, ModuleID: moduleID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, moduleID)
}

func (mock *moduleRepoMock) DeleteCalls() []struct {
	UserID   uuid.UUID
	ModuleID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ zoneRepo = &zoneRepoMock{}

type zoneRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *zoneRepoMock) GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error) {
	if mock.GetByIDFunc == nil {
		panic("zoneRepoMock.GetByIDFunc: method is nil but zoneRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		ZoneID uuid.UUID
	}{UserID: userID, ZoneID: zoneID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, zoneID)
}

func (mock *zoneRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ZoneID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ nodeQuerier = &nodeQuerierMock{}

type nodeQuerierMock struct {
	FindByFilterFunc func(ctx context.Context, userID uuid.UUID, f domain.NodeFilter) ([]domain.Node, error)

	calls struct {
		FindByFilter []struct {
			UserID uuid.UUID
			F      domain.NodeFilter
		}
	}
	lock sync.RWMutex
}

func (mock *nodeQuerierMock) FindByFilter(ctx context.Context, userID uuid.UUID, f domain.NodeFilter) ([]domain.Node, error) {
	if mock.FindByFilterFunc == nil {
		panic("nodeQuerierMock.FindByFilterFunc: method is nil but nodeQuerier.FindByFilter was just called")
	}
	mock.lock.Lock()
	mock.calls.FindByFilter = append(mock.calls.FindByFilter, struct {
		UserID uuid.UUID
		F      domain.NodeFilter
	}{UserID: userID, F: f})
	mock.lock.Unlock()
	return mock.FindByFilterFunc(ctx, userID, f)
}

func (mock *nodeQuerierMock) FindByFilterCalls() []struct {
	UserID uuid.UUID
	F      domain.NodeFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindByFilter
}

var _ tagResolver = &tagResolverMock{}

type tagResolverMock struct {
	ResolveIDsByNamesFunc func(ctx context.Context, userID uuid.UUID, names []string) ([]uuid.UUID, error)

	calls struct {
		ResolveIDsByNames []struct {
			UserID uuid.UUID
			Names  []string
		}
	}
	lock sync.RWMutex
}

func (mock *tagResolverMock) ResolveIDsByNames(ctx context.Context, userID uuid.UUID, names []string) ([]uuid.UUID, error) {
	if mock.ResolveIDsByNamesFunc == nil {
		panic("tagResolverMock.ResolveIDsByNamesFunc: method is nil but tagResolver.ResolveIDsByNames was just called")
	}
	mock.lock.Lock()
	mock.calls.ResolveIDsByNames = append(mock.calls.ResolveIDsByNames, struct {
		UserID uuid.UUID
		Names  []string
	}{UserID: userID, Names: names})
	mock.lock.Unlock()
	return mock.ResolveIDsByNamesFunc(ctx, userID, names)
}

func (mock *tagResolverMock) ResolveIDsByNamesCalls() []struct {
	UserID uuid.UUID
	Names  []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResolveIDsByNames
}
