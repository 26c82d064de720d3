package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		Create []struct {
			U *domain.User
		}
		GetByID []struct {
			UserID uuid.UUID
		}
		GetByEmail []struct {
			Email string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		U *domain.User
	}{U: u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	U *domain.User
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct {
		Email string
	}{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Email string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHashFunc        func(ctx context.Context, hash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, hash string) error
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create []struct {
			T *domain.RefreshToken
		}
		GetByHash []struct {
			Hash string
		}
		Revoke []struct {
			Hash string
		}
		RevokeAllForUser []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		T *domain.RefreshToken
	}{T: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	T *domain.RefreshToken
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, struct {
		Hash string
	}{Hash: hash})
	mock.lock.Unlock()
	return mock.GetByHashFunc(ctx, hash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Hash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByHash
}

func (mock *tokenRepoMock) Revoke(ctx context.Context, hash string) error {
	if mock.RevokeFunc == nil {
		panic("tokenRepoMock.RevokeFunc: method is nil but tokenRepo.Revoke was just called")
	}
	mock.lock.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, struct {
		Hash string
	}{Hash: hash})
	mock.lock.Unlock()
	return mock.RevokeFunc(ctx, hash)
}

func (mock *tokenRepoMock) RevokeCalls() []struct {
	Hash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Revoke
}

func (mock *tokenRepoMock) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllForUserFunc == nil {
		panic("tokenRepoMock.RevokeAllForUserFunc: method is nil but tokenRepo.RevokeAllForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllForUser = append(mock.calls.RevokeAllForUser, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.RevokeAllForUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllForUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeAllForUser
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, error)
	GenerateRefreshTokenFunc func() (string, string, error)
	HashTokenFunc            func(raw string) string
	AccessTTLFunc            func() time.Duration

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
		}
		ValidateAccessToken []struct {
			Token string
		}
		GenerateRefreshToken []struct{}
		HashToken            []struct {
			Raw string
		}
		AccessTTL []struct{}
	}
	lock sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GenerateAccessToken
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, struct {
		Token string
	}{Token: token})
	mock.lock.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ValidateAccessToken
}

func (mock *tokenManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("tokenManagerMock.GenerateRefreshTokenFunc: method is nil but tokenManager.GenerateRefreshToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, struct{}{})
	mock.lock.Unlock()
	return mock.GenerateRefreshTokenFunc()
}

func (mock *tokenManagerMock) GenerateRefreshTokenCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GenerateRefreshToken
}

func (mock *tokenManagerMock) HashToken(raw string) string {
	if mock.HashTokenFunc == nil {
		panic("tokenManagerMock.HashTokenFunc: method is nil but tokenManager.HashToken was just called")
	}
	mock.lock.Lock()
	mock.calls.HashToken = append(mock.calls.HashToken, struct {
		Raw string
	}{Raw: raw})
	mock.lock.Unlock()
	return mock.HashTokenFunc(raw)
}

func (mock *tokenManagerMock) HashTokenCalls() []struct {
	Raw string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.HashToken
}

func (mock *tokenManagerMock) AccessTTL() time.Duration {
	if mock.AccessTTLFunc == nil {
		panic("tokenManagerMock.AccessTTLFunc: method is nil but tokenManager.AccessTTL was just called")
	}
	mock.lock.Lock()
	mock.calls.AccessTTL = append(mock.calls.AccessTTL, struct{}{})
	mock.lock.Unlock()
	return mock.AccessTTLFunc()
}

func (mock *tokenManagerMock) AccessTTLCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AccessTTL
}
