package node

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ nodeRepo = &nodeRepoMock{}

type nodeRepoMock struct {
	CreateFunc          func(ctx context.Context, n *domain.Node) (*domain.Node, error)
	GetByIDFunc         func(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error)
	ListFunc            func(ctx context.Context, userID uuid.UUID, limit int, cursor *uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	SearchFunc          func(ctx context.Context, userID uuid.UUID, term string, kind *domain.NodeKind, includeDeleted bool) ([]domain.Node, error)
	UpdateFunc          func(ctx context.Context, userID, nodeID uuid.UUID, expectedVersion int, params domain.NodeUpdateParams) (*domain.Node, error)
	DeleteFunc          func(ctx context.Context, userID, nodeID uuid.UUID) error
	SoftDeleteFunc      func(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error)
	RestoreFunc         func(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error)
	ChildrenFunc        func(ctx context.Context, parentID uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	DescendantsFunc     func(ctx context.Context, rootID uuid.UUID, includeDeleted bool) ([]domain.Node, error)
	DescendantIDsFunc   func(ctx context.Context, rootID uuid.UUID) (map[uuid.UUID]struct{}, error)
	NextPositionFunc    func(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) (int, error)
	SetTreePositionFunc func(ctx context.Context, userID, nodeID uuid.UUID, parentID *uuid.UUID, position int) (*domain.Node, error)
	SetPositionFunc     func(ctx context.Context, userID, nodeID uuid.UUID, position int) (*domain.Node, error)
	ListReferencingFunc func(ctx context.Context, targetID uuid.UUID) ([]domain.Node, error)

	calls struct {
		Create []struct {
			N *domain.Node
		}
		GetByID []struct {
			UserID         uuid.UUID
			NodeID         uuid.UUID
			IncludeDeleted bool
		}
		List []struct {
			UserID         uuid.UUID
			Limit          int
			Cursor         *uuid.UUID
			IncludeDeleted bool
		}
		Search []struct {
			UserID uuid.UUID
			Term   string
		}
		Update []struct {
			UserID          uuid.UUID
			NodeID          uuid.UUID
			ExpectedVersion int
			Params          domain.NodeUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			NodeID uuid.UUID
		}
		SoftDelete []struct {
			UserID uuid.UUID
			NodeID uuid.UUID
		}
		Restore []struct {
			UserID uuid.UUID
			NodeID uuid.UUID
		}
		Children []struct {
			ParentID uuid.UUID
		}
		Descendants []struct {
			RootID uuid.UUID
		}
		DescendantIDs []struct {
			RootID uuid.UUID
		}
		NextPosition []struct {
			UserID   uuid.UUID
			ParentID *uuid.UUID
		}
		SetTreePosition []struct {
			UserID   uuid.UUID
			NodeID   uuid.UUID
			ParentID *uuid.UUID
			Position int
		}
		SetPosition []struct {
			UserID   uuid.UUID
			NodeID   uuid.UUID
			Position int
		}
		ListReferencing []struct {
			TargetID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *nodeRepoMock) Create(ctx context.Context, n *domain.Node) (*domain.Node, error) {
	if mock.CreateFunc == nil {
		panic("nodeRepoMock.CreateFunc: method is nil but nodeRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ N *domain.Node }{N: n})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *nodeRepoMock) CreateCalls() []struct{ N *domain.Node } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *nodeRepoMock) GetByID(ctx context.Context, userID, nodeID uuid.UUID, includeDeleted bool) (*domain.Node, error) {
	if mock.GetByIDFunc == nil {
		panic("nodeRepoMock.GetByIDFunc: method is nil but nodeRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID         uuid.UUID
		NodeID         uuid.UUID
		IncludeDeleted bool
	}{UserID: userID, NodeID: nodeID, IncludeDeleted: includeDeleted})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, nodeID, includeDeleted)
}

func (mock *nodeRepoMock) GetByIDCalls() []struct {
	UserID         uuid.UUID
	NodeID         uuid.UUID
	IncludeDeleted bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *nodeRepoMock) List(ctx context.Context, userID uuid.UUID, limit int, cursor *uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	if mock.ListFunc == nil {
		panic("nodeRepoMock.ListFunc: method is nil but nodeRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID         uuid.UUID
		Limit          int
		Cursor         *uuid.UUID
		IncludeDeleted bool
	}{UserID: userID, Limit: limit, Cursor: cursor, IncludeDeleted: includeDeleted})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, limit, cursor, includeDeleted)
}

func (mock *nodeRepoMock) ListCalls() []struct {
	UserID         uuid.UUID
	Limit          int
	Cursor         *uuid.UUID
	IncludeDeleted bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *nodeRepoMock) Search(ctx context.Context, userID uuid.UUID, term string, kind *domain.NodeKind, includeDeleted bool) ([]domain.Node, error) {
	if mock.SearchFunc == nil {
		panic("nodeRepoMock.SearchFunc: method is nil but nodeRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		UserID uuid.UUID
		Term   string
	}{UserID: userID, Term: term})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, userID, term, kind, includeDeleted)
}

func (mock *nodeRepoMock) SearchCalls() []struct {
	UserID uuid.UUID
	Term   string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *nodeRepoMock) Update(ctx context.Context, userID, nodeID uuid.UUID, expectedVersion int, params domain.NodeUpdateParams) (*domain.Node, error) {
	if mock.UpdateFunc == nil {
		panic("nodeRepoMock.UpdateFunc: method is nil but nodeRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID          uuid.UUID
		NodeID          uuid.UUID
		ExpectedVersion int
		Params          domain.NodeUpdateParams
	}{UserID: userID, NodeID: nodeID, ExpectedVersion: expectedVersion, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, nodeID, expectedVersion, params)
}

func (mock *nodeRepoMock) UpdateCalls() []struct {
	UserID          uuid.UUID
	NodeID          uuid.UUID
	ExpectedVersion int
	Params          domain.NodeUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *nodeRepoMock) Delete(ctx context.Context, userID, nodeID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("nodeRepoMock.DeleteFunc: method is nil but nodeRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		NodeID uuid.UUID
	}{UserID: userID, NodeID: nodeID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, nodeID)
}

func (mock *nodeRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	NodeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *nodeRepoMock) SoftDelete(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error) {
	if mock.SoftDeleteFunc == nil {
		panic("nodeRepoMock.SoftDeleteFunc: method is nil but nodeRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct {
		UserID uuid.UUID
		NodeID uuid.UUID
	}{UserID: userID, NodeID: nodeID})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, nodeID)
}

func (mock *nodeRepoMock) SoftDeleteCalls() []struct {
	UserID uuid.UUID
	NodeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftDelete
}

func (mock *nodeRepoMock) Restore(ctx context.Context, userID, nodeID uuid.UUID) (*domain.Node, error) {
	if mock.RestoreFunc == nil {
		panic("nodeRepoMock.RestoreFunc: method is nil but nodeRepo.Restore was just called")
	}
	mock.lock.Lock()
	mock.calls.Restore = append(mock.calls.Restore, struct {
		UserID uuid.UUID
		NodeID uuid.UUID
	}{UserID: userID, NodeID: nodeID})
	mock.lock.Unlock()
	return mock.RestoreFunc(ctx, userID, nodeID)
}

func (mock *nodeRepoMock) RestoreCalls() []struct {
	UserID uuid.UUID
	NodeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Restore
}

func (mock *nodeRepoMock) Children(ctx context.Context, parentID uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	if mock.ChildrenFunc == nil {
		panic("nodeRepoMock.ChildrenFunc: method is nil but nodeRepo.Children was just called")
	}
	mock.lock.Lock()
	mock.calls.Children = append(mock.calls.Children, struct{ ParentID uuid.UUID }{ParentID: parentID})
	mock.lock.Unlock()
	return mock.ChildrenFunc(ctx, parentID, includeDeleted)
}

func (mock *nodeRepoMock) ChildrenCalls() []struct{ ParentID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Children
}

func (mock *nodeRepoMock) Descendants(ctx context.Context, rootID uuid.UUID, includeDeleted bool) ([]domain.Node, error) {
	if mock.DescendantsFunc == nil {
		panic("nodeRepoMock.DescendantsFunc: method is nil but nodeRepo.Descendants was just called")
	}
	mock.lock.Lock()
	mock.calls.Descendants = append(mock.calls.Descendants, struct{ RootID uuid.UUID }{RootID: rootID})
	mock.lock.Unlock()
	return mock.DescendantsFunc(ctx, rootID, includeDeleted)
}

func (mock *nodeRepoMock) DescendantsCalls() []struct{ RootID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Descendants
}

func (mock *nodeRepoMock) DescendantIDs(ctx context.Context, rootID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if mock.DescendantIDsFunc == nil {
		panic("nodeRepoMock.DescendantIDsFunc: method is nil but nodeRepo.DescendantIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DescendantIDs = append(mock.calls.DescendantIDs, struct{ RootID uuid.UUID }{RootID: rootID})
	mock.lock.Unlock()
	return mock.DescendantIDsFunc(ctx, rootID)
}

func (mock *nodeRepoMock) DescendantIDsCalls() []struct{ RootID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DescendantIDs
}

func (mock *nodeRepoMock) NextPosition(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) (int, error) {
	if mock.NextPositionFunc == nil {
		panic("nodeRepoMock.NextPositionFunc: method is nil but nodeRepo.NextPosition was just called")
	}
	mock.lock.Lock()
	mock.calls.NextPosition = append(mock.calls.NextPosition, struct {
		UserID   uuid.UUID
		ParentID *uuid.UUID
	}{UserID: userID, ParentID: parentID})
	mock.lock.Unlock()
	return mock.NextPositionFunc(ctx, userID, parentID)
}

func (mock *nodeRepoMock) NextPositionCalls() []struct {
	UserID   uuid.UUID
	ParentID *uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NextPosition
}

func (mock *nodeRepoMock) SetTreePosition(ctx context.Context, userID, nodeID uuid.UUID, parentID *uuid.UUID, position int) (*domain.Node, error) {
	if mock.SetTreePositionFunc == nil {
		panic("nodeRepoMock.SetTreePositionFunc: method is nil but nodeRepo.SetTreePosition was just called")
	}
	mock.lock.Lock()
	mock.calls.SetTreePosition = append(mock.calls.SetTreePosition, struct {
		UserID   uuid.UUID
		NodeID   uuid.UUID
		ParentID *uuid.UUID
		Position int
	}{UserID: userID, NodeID: nodeID, ParentID: parentID, Position: position})
	mock.lock.Unlock()
	return mock.SetTreePositionFunc(ctx, userID, nodeID, parentID, position)
}

func (mock *nodeRepoMock) SetTreePositionCalls() []struct {
	UserID   uuid.UUID
	NodeID   uuid.UUID
	ParentID *uuid.UUID
	Position int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetTreePosition
}

func (mock *nodeRepoMock) SetPosition(ctx context.Context, userID, nodeID uuid.UUID, position int) (*domain.Node, error) {
	if mock.SetPositionFunc == nil {
		panic("nodeRepoMock.SetPositionFunc: method is nil but nodeRepo.SetPosition was just called")
	}
	mock.lock.Lock()
	mock.calls.SetPosition = append(mock.calls.SetPosition, struct {
		UserID   uuid.UUID
		NodeID   uuid.UUID
		Position int
	}{UserID: userID, NodeID: nodeID, Position: position})
	mock.lock.Unlock()
	return mock.SetPositionFunc(ctx, userID, nodeID, position)
}

func (mock *nodeRepoMock) SetPositionCalls() []struct {
	UserID   uuid.UUID
	NodeID   uuid.UUID
	Position int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetPosition
}

func (mock *nodeRepoMock) ListReferencing(ctx context.Context, targetID uuid.UUID) ([]domain.Node, error) {
	if mock.ListReferencingFunc == nil {
		panic("nodeRepoMock.ListReferencingFunc: method is nil but nodeRepo.ListReferencing was just called")
	}
	mock.lock.Lock()
	mock.calls.ListReferencing = append(mock.calls.ListReferencing, struct{ TargetID uuid.UUID }{TargetID: targetID})
	mock.lock.Unlock()
	return mock.ListReferencingFunc(ctx, targetID)
}

func (mock *nodeRepoMock) ListReferencingCalls() []struct{ TargetID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListReferencing
}
