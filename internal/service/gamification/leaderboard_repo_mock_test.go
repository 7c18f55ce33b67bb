package gamification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ leaderboardRepo = &leaderboardRepoMock{}

type leaderboardRepoMock struct {
	SetOptInFunc func(ctx context.Context, userID uuid.UUID, optIn bool) error
	TopFunc      func(ctx context.Context, callerID uuid.UUID, limit int, includeSelf bool) ([]domain.LeaderboardEntry, error)

	calls struct {
		SetOptIn []struct {
			Ctx    context.Context
			UserID uuid.UUID
			OptIn  bool
		}
		Top []struct {
			Ctx         context.Context
			CallerID    uuid.UUID
			Limit       int
			IncludeSelf bool
		}
	}
	lockSetOptIn sync.RWMutex
	lockTop      sync.RWMutex
}

func (mock *leaderboardRepoMock) SetOptIn(ctx context.Context, userID uuid.UUID, optIn bool) error {
	if mock.SetOptInFunc == nil {
		panic("leaderboardRepoMock.SetOptInFunc: method is nil but leaderboardRepo.SetOptIn was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		OptIn  bool
	}{Ctx: ctx, UserID: userID, OptIn: optIn}
	mock.lockSetOptIn.Lock()
	mock.calls.SetOptIn = append(mock.calls.SetOptIn, callInfo)
	mock.lockSetOptIn.Unlock()
	return mock.SetOptInFunc(ctx, userID, optIn)
}

func (mock *leaderboardRepoMock) SetOptInCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	OptIn  bool
} {
	mock.lockSetOptIn.RLock()
	calls := mock.calls.SetOptIn
	mock.lockSetOptIn.RUnlock()
	return calls
}

func (mock *leaderboardRepoMock) Top(ctx context.Context, callerID uuid.UUID, limit int, includeSelf bool) ([]domain.LeaderboardEntry, error) {
	if mock.TopFunc == nil {
		panic("leaderboardRepoMock.TopFunc: method is nil but leaderboardRepo.Top was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CallerID    uuid.UUID
		Limit       int
		IncludeSelf bool
	}{Ctx: ctx, CallerID: callerID, Limit: limit, IncludeSelf: includeSelf}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, callerID, limit, includeSelf)
}

func (mock *leaderboardRepoMock) TopCalls() []struct {
	Ctx         context.Context
	CallerID    uuid.UUID
	Limit       int
	IncludeSelf bool
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}
