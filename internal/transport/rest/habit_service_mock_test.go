package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/service/habit"
)

var _ habitService = &habitServiceMock{}

type habitServiceMock struct {
	CreateFunc         func(ctx context.Context, input habit.CreateInput) (*domain.Habit, error)
	ListFunc           func(ctx context.Context) ([]domain.Habit, error)
	ReplaceHistoryFunc func(ctx context.Context, input habit.ReplaceHistoryInput) (*domain.Habit, error)
	ToggleTodayFunc    func(ctx context.Context, input habit.ToggleInput) (*habit.ToggleResult, error)
	WeeklySummaryFunc  func(ctx context.Context) (domain.WeeklySummary, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input habit.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		ReplaceHistory []struct {
			Ctx   context.Context
			Input habit.ReplaceHistoryInput
		}
		ToggleToday []struct {
			Ctx   context.Context
			Input habit.ToggleInput
		}
		WeeklySummary []struct {
			Ctx context.Context
		}
	}
	lockCreate         sync.RWMutex
	lockList           sync.RWMutex
	lockReplaceHistory sync.RWMutex
	lockToggleToday    sync.RWMutex
	lockWeeklySummary  sync.RWMutex
}

func (mock *habitServiceMock) Create(ctx context.Context, input habit.CreateInput) (*domain.Habit, error) {
	if mock.CreateFunc == nil {
		panic("habitServiceMock.CreateFunc: method is nil but habitService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input habit.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *habitServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input habit.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *habitServiceMock) List(ctx context.Context) ([]domain.Habit, error) {
	if mock.ListFunc == nil {
		panic("habitServiceMock.ListFunc: method is nil but habitService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *habitServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *habitServiceMock) ReplaceHistory(ctx context.Context, input habit.ReplaceHistoryInput) (*domain.Habit, error) {
	if mock.ReplaceHistoryFunc == nil {
		panic("habitServiceMock.ReplaceHistoryFunc: method is nil but habitService.ReplaceHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input habit.ReplaceHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockReplaceHistory.Lock()
	mock.calls.ReplaceHistory = append(mock.calls.ReplaceHistory, callInfo)
	mock.lockReplaceHistory.Unlock()
	return mock.ReplaceHistoryFunc(ctx, input)
}

func (mock *habitServiceMock) ReplaceHistoryCalls() []struct {
	Ctx   context.Context
	Input habit.ReplaceHistoryInput
} {
	mock.lockReplaceHistory.RLock()
	calls := mock.calls.ReplaceHistory
	mock.lockReplaceHistory.RUnlock()
	return calls
}

func (mock *habitServiceMock) ToggleToday(ctx context.Context, input habit.ToggleInput) (*habit.ToggleResult, error) {
	if mock.ToggleTodayFunc == nil {
		panic("habitServiceMock.ToggleTodayFunc: method is nil but habitService.ToggleToday was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input habit.ToggleInput
	}{Ctx: ctx, Input: input}
	mock.lockToggleToday.Lock()
	mock.calls.ToggleToday = append(mock.calls.ToggleToday, callInfo)
	mock.lockToggleToday.Unlock()
	return mock.ToggleTodayFunc(ctx, input)
}

func (mock *habitServiceMock) ToggleTodayCalls() []struct {
	Ctx   context.Context
	Input habit.ToggleInput
} {
	mock.lockToggleToday.RLock()
	calls := mock.calls.ToggleToday
	mock.lockToggleToday.RUnlock()
	return calls
}

func (mock *habitServiceMock) WeeklySummary(ctx context.Context) (domain.WeeklySummary, error) {
	if mock.WeeklySummaryFunc == nil {
		panic("habitServiceMock.WeeklySummaryFunc: method is nil but habitService.WeeklySummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWeeklySummary.Lock()
	mock.calls.WeeklySummary = append(mock.calls.WeeklySummary, callInfo)
	mock.lockWeeklySummary.Unlock()
	return mock.WeeklySummaryFunc(ctx)
}

func (mock *habitServiceMock) WeeklySummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockWeeklySummary.RLock()
	calls := mock.calls.WeeklySummary
	mock.lockWeeklySummary.RUnlock()
	return calls
}
