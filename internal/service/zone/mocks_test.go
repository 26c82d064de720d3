package zone

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ zoneRepo = &zoneRepoMock{}

type zoneRepoMock struct {
	CreateFunc       func(ctx context.Context, z *domain.Zone) (*domain.Zone, error)
	GetByIDFunc      func(ctx context.Context, userID, zoneID uuid.UUID) (*domain.Zone, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.Zone, error)
	UpdateFunc       func(ctx context.Context, userID, zoneID uuid.UUID, name, color, icon *string) (*domain.Zone, error)
	SetPositionFunc  func(ctx context.Context, userID, zoneID uuid.UUID, position int) error
	ClearDefaultFunc func(ctx context.Context, userID uuid.UUID) error
	MarkDefaultFunc  func(ctx context.Context, userID, zoneID uuid.UUID) error
	DeleteFunc       func(ctx context.Context, userID, zoneID uuid.UUID) error
	NextPositionFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Z *domain.Zone
		}
		GetByID []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
		}
		Update []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
			Name   *string
			Color  *string
			Icon   *string
		}
		SetPosition []struct {
			UserID   uuid.UUID
			ZoneID   uuid.UUID
			Position int
		}
		ClearDefault []struct {
			UserID uuid.UUID
		}
		MarkDefault []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
		}
		Delete []struct {
			UserID uuid.UUID
			ZoneID uuid.UUID
		}
		NextPosition []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *zoneRepoMock) Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	if mock.CreateFunc == nil {
		panic("zoneRepoMock.CreateFunc: method is nil but zoneRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Z *domain.Zone
	}{Z: z})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, z)
}

func (mock *zoneRepoMock) CreateCalls() []struct {
	Z *domain.Zone
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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

func (mock *zoneRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Zone, error) {
	if mock.ListFunc == nil {
		panic("zoneRepoMock.ListFunc: method is nil but zoneRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *zoneRepoMock) ListCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *zoneRepoMock) Update(ctx context.Context, userID, zoneID uuid.UUID, name, color, icon *string) (*domain.Zone, error) {
	if mock.UpdateFunc == nil {
		panic("zoneRepoMock.UpdateFunc: method is nil but zoneRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		ZoneID uuid.UUID
		Name   *string
		Color  *string
		Icon   *string
	}{UserID: userID, ZoneID: zoneID, Name: name, Color: color, Icon: icon})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, zoneID, name, color, icon)
}

func (mock *zoneRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ZoneID uuid.UUID
	Name   *string
	Color  *string
	Icon   *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *zoneRepoMock) SetPosition(ctx context.Context, userID, zoneID uuid.UUID, position int) error {
	if mock.SetPositionFunc == nil {
		panic("zoneRepoMock.SetPositionFunc: method is nil but zoneRepo.SetPosition was just called")
	}
	mock.lock.Lock()
	mock.calls.SetPosition = append(mock.calls.SetPosition, struct {
		UserID   uuid.UUID
		ZoneID   uuid.UUID
		Position int
	}{UserID: userID, ZoneID: zoneID, Position: position})
	mock.lock.Unlock()
	return mock.SetPositionFunc(ctx, userID, zoneID, position)
}

func (mock *zoneRepoMock) SetPositionCalls() []struct {
	UserID   uuid.UUID
	ZoneID   uuid.UUID
	Position int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetPosition
}

func (mock *zoneRepoMock) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	if mock.ClearDefaultFunc == nil {
		panic("zoneRepoMock.ClearDefaultFunc: method is nil but zoneRepo.ClearDefault was just called")
	}
	mock.lock.Lock()
	mock.calls.ClearDefault = append(mock.calls.ClearDefault, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.ClearDefaultFunc(ctx, userID)
}

func (mock *zoneRepoMock) ClearDefaultCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ClearDefault
}

func (mock *zoneRepoMock) MarkDefault(ctx context.Context, userID, zoneID uuid.UUID) error {
	if mock.MarkDefaultFunc == nil {
		panic("zoneRepoMock.MarkDefaultFunc: method is nil but zoneRepo.MarkDefault was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkDefault = append(mock.calls.MarkDefault, struct {
		UserID uuid.UUID
		ZoneID uuid.UUID
	}{UserID: userID, ZoneID: zoneID})
	mock.lock.Unlock()
	return mock.MarkDefaultFunc(ctx, userID, zoneID)
}

func (mock *zoneRepoMock) MarkDefaultCalls() []struct {
	UserID uuid.UUID
	ZoneID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkDefault
}

func (mock *zoneRepoMock) Delete(ctx context.Context, userID, zoneID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("zoneRepoMock.DeleteFunc: method is nil but zoneRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		ZoneID uuid.UUID
	}{UserID: userID, ZoneID: zoneID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, zoneID)
}

func (mock *zoneRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ZoneID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *zoneRepoMock) NextPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.NextPositionFunc == nil {
		panic("zoneRepoMock.NextPositionFunc: method is nil but zoneRepo.NextPosition was just called")
	}
	mock.lock.Lock()
	mock.calls.NextPosition = append(mock.calls.NextPosition, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.NextPositionFunc(ctx, userID)
}

func (mock *zoneRepoMock) NextPositionCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NextPosition
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
