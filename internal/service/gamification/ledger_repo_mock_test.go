package gamification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	BalanceOfFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	RecentEarningsFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PointEarning, error)

	calls struct {
		BalanceOf []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		RecentEarnings []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockBalanceOf      sync.RWMutex
	lockRecentEarnings sync.RWMutex
}

func (mock *ledgerRepoMock) BalanceOf(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.BalanceOfFunc == nil {
		panic("ledgerRepoMock.BalanceOfFunc: method is nil but ledgerRepo.BalanceOf was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockBalanceOf.Lock()
	mock.calls.BalanceOf = append(mock.calls.BalanceOf, callInfo)
	mock.lockBalanceOf.Unlock()
	return mock.BalanceOfFunc(ctx, userID)
}

func (mock *ledgerRepoMock) BalanceOfCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockBalanceOf.RLock()
	calls := mock.calls.BalanceOf
	mock.lockBalanceOf.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) RecentEarnings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PointEarning, error) {
	if mock.RecentEarningsFunc == nil {
		panic("ledgerRepoMock.RecentEarningsFunc: method is nil but ledgerRepo.RecentEarnings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockRecentEarnings.Lock()
	mock.calls.RecentEarnings = append(mock.calls.RecentEarnings, callInfo)
	mock.lockRecentEarnings.Unlock()
	return mock.RecentEarningsFunc(ctx, userID, limit)
}

func (mock *ledgerRepoMock) RecentEarningsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockRecentEarnings.RLock()
	calls := mock.calls.RecentEarnings
	mock.lockRecentEarnings.RUnlock()
	return calls
}
