package habit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ habitRepo = &habitRepoMock{}

type habitRepoMock struct {
	CreateFunc           func(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, habitID uuid.UUID) (*domain.Habit, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	UpdateProgressFunc   func(ctx context.Context, userID uuid.UUID, habitID uuid.UUID, history domain.CompletionSet, streak int) (*domain.Habit, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			H   *domain.Habit
		}
		GetByIDForUpdate []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			HabitID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateProgress []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			HabitID uuid.UUID
			History domain.CompletionSet
			Streak  int
		}
	}
	lockCreate           sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByUser       sync.RWMutex
	lockUpdateProgress   sync.RWMutex
}

func (mock *habitRepoMock) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	if mock.CreateFunc == nil {
		panic("habitRepoMock.CreateFunc: method is nil but habitRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   *domain.Habit
	}{Ctx: ctx, H: h}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, h)
}

func (mock *habitRepoMock) CreateCalls() []struct {
	Ctx context.Context
	H   *domain.Habit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *habitRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, habitID uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("habitRepoMock.GetByIDForUpdateFunc: method is nil but habitRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		HabitID uuid.UUID
	}{Ctx: ctx, UserID: userID, HabitID: habitID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, habitID)
}

func (mock *habitRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	HabitID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *habitRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	if mock.ListByUserFunc == nil {
		panic("habitRepoMock.ListByUserFunc: method is nil but habitRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *habitRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *habitRepoMock) UpdateProgress(ctx context.Context, userID uuid.UUID, habitID uuid.UUID, history domain.CompletionSet, streak int) (*domain.Habit, error) {
	if mock.UpdateProgressFunc == nil {
		panic("habitRepoMock.UpdateProgressFunc: method is nil but habitRepo.UpdateProgress was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		HabitID uuid.UUID
		History domain.CompletionSet
		Streak  int
	}{Ctx: ctx, UserID: userID, HabitID: habitID, History: history, Streak: streak}
	mock.lockUpdateProgress.Lock()
	mock.calls.UpdateProgress = append(mock.calls.UpdateProgress, callInfo)
	mock.lockUpdateProgress.Unlock()
	return mock.UpdateProgressFunc(ctx, userID, habitID, history, streak)
}

func (mock *habitRepoMock) UpdateProgressCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	HabitID uuid.UUID
	History domain.CompletionSet
	Streak  int
} {
	mock.lockUpdateProgress.RLock()
	calls := mock.calls.UpdateProgress
	mock.lockUpdateProgress.RUnlock()
	return calls
}
