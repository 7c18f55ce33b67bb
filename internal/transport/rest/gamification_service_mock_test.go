package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ gamificationService = &gamificationServiceMock{}

type gamificationServiceMock struct {
	BadgesFunc         func(ctx context.Context) ([]domain.Badge, error)
	LeaderboardFunc    func(ctx context.Context, includeSelf bool) ([]domain.LeaderboardEntry, error)
	PointsFunc         func(ctx context.Context) (int, error)
	RecentEarningsFunc func(ctx context.Context, limit int) ([]domain.PointEarning, error)
	SetOptInFunc       func(ctx context.Context, optIn bool) error

	calls struct {
		Badges []struct {
			Ctx context.Context
		}
		Leaderboard []struct {
			Ctx         context.Context
			IncludeSelf bool
		}
		Points []struct {
			Ctx context.Context
		}
		RecentEarnings []struct {
			Ctx   context.Context
			Limit int
		}
		SetOptIn []struct {
			Ctx   context.Context
			OptIn bool
		}
	}
	lockBadges         sync.RWMutex
	lockLeaderboard    sync.RWMutex
	lockPoints         sync.RWMutex
	lockRecentEarnings sync.RWMutex
	lockSetOptIn       sync.RWMutex
}

func (mock *gamificationServiceMock) Badges(ctx context.Context) ([]domain.Badge, error) {
	if mock.BadgesFunc == nil {
		panic("gamificationServiceMock.BadgesFunc: method is nil but gamificationService.Badges was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockBadges.Lock()
	mock.calls.Badges = append(mock.calls.Badges, callInfo)
	mock.lockBadges.Unlock()
	return mock.BadgesFunc(ctx)
}

func (mock *gamificationServiceMock) BadgesCalls() []struct {
	Ctx context.Context
} {
	mock.lockBadges.RLock()
	calls := mock.calls.Badges
	mock.lockBadges.RUnlock()
	return calls
}

func (mock *gamificationServiceMock) Leaderboard(ctx context.Context, includeSelf bool) ([]domain.LeaderboardEntry, error) {
	if mock.LeaderboardFunc == nil {
		panic("gamificationServiceMock.LeaderboardFunc: method is nil but gamificationService.Leaderboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		IncludeSelf bool
	}{Ctx: ctx, IncludeSelf: includeSelf}
	mock.lockLeaderboard.Lock()
	mock.calls.Leaderboard = append(mock.calls.Leaderboard, callInfo)
	mock.lockLeaderboard.Unlock()
	return mock.LeaderboardFunc(ctx, includeSelf)
}

func (mock *gamificationServiceMock) LeaderboardCalls() []struct {
	Ctx         context.Context
	IncludeSelf bool
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}

func (mock *gamificationServiceMock) Points(ctx context.Context) (int, error) {
	if mock.PointsFunc == nil {
		panic("gamificationServiceMock.PointsFunc: method is nil but gamificationService.Points was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPoints.Lock()
	mock.calls.Points = append(mock.calls.Points, callInfo)
	mock.lockPoints.Unlock()
	return mock.PointsFunc(ctx)
}

func (mock *gamificationServiceMock) PointsCalls() []struct {
	Ctx context.Context
} {
	mock.lockPoints.RLock()
	calls := mock.calls.Points
	mock.lockPoints.RUnlock()
	return calls
}

func (mock *gamificationServiceMock) RecentEarnings(ctx context.Context, limit int) ([]domain.PointEarning, error) {
	if mock.RecentEarningsFunc == nil {
		panic("gamificationServiceMock.RecentEarningsFunc: method is nil but gamificationService.RecentEarnings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecentEarnings.Lock()
	mock.calls.RecentEarnings = append(mock.calls.RecentEarnings, callInfo)
	mock.lockRecentEarnings.Unlock()
	return mock.RecentEarningsFunc(ctx, limit)
}

func (mock *gamificationServiceMock) RecentEarningsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecentEarnings.RLock()
	calls := mock.calls.RecentEarnings
	mock.lockRecentEarnings.RUnlock()
	return calls
}

func (mock *gamificationServiceMock) SetOptIn(ctx context.Context, optIn bool) error {
	if mock.SetOptInFunc == nil {
		panic("gamificationServiceMock.SetOptInFunc: method is nil but gamificationService.SetOptIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OptIn bool
	}{Ctx: ctx, OptIn: optIn}
	mock.lockSetOptIn.Lock()
	mock.calls.SetOptIn = append(mock.calls.SetOptIn, callInfo)
	mock.lockSetOptIn.Unlock()
	return mock.SetOptInFunc(ctx, optIn)
}

func (mock *gamificationServiceMock) SetOptInCalls() []struct {
	Ctx   context.Context
	OptIn bool
} {
	mock.lockSetOptIn.RLock()
	calls := mock.calls.SetOptIn
	mock.lockSetOptIn.RUnlock()
	return calls
}
