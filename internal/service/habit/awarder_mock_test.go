package habit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ awarder = &awarderMock{}

type awarderMock struct {
	AwardFunc     func(ctx context.Context, userID uuid.UUID, action domain.AwardAction) (*domain.PointEarning, error)
	AwardOnceFunc func(ctx context.Context, userID uuid.UUID, action domain.AwardAction, key string) (*domain.PointEarning, bool, error)

	calls struct {
		Award []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Action domain.AwardAction
		}
		AwardOnce []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Action domain.AwardAction
			Key    string
		}
	}
	lockAward     sync.RWMutex
	lockAwardOnce sync.RWMutex
}

func (mock *awarderMock) Award(ctx context.Context, userID uuid.UUID, action domain.AwardAction) (*domain.PointEarning, error) {
	if mock.AwardFunc == nil {
		panic("awarderMock.AwardFunc: method is nil but awarder.Award was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Action domain.AwardAction
	}{Ctx: ctx, UserID: userID, Action: action}
	mock.lockAward.Lock()
	mock.calls.Award = append(mock.calls.Award, callInfo)
	mock.lockAward.Unlock()
	return mock.AwardFunc(ctx, userID, action)
}

func (mock *awarderMock) AwardCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Action domain.AwardAction
} {
	mock.lockAward.RLock()
	calls := mock.calls.Award
	mock.lockAward.RUnlock()
	return calls
}

func (mock *awarderMock) AwardOnce(ctx context.Context, userID uuid.UUID, action domain.AwardAction, key string) (*domain.PointEarning, bool, error) {
	if mock.AwardOnceFunc == nil {
		panic("awarderMock.AwardOnceFunc: method is nil but awarder.AwardOnce was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Action domain.AwardAction
		Key    string
	}{Ctx: ctx, UserID: userID, Action: action, Key: key}
	mock.lockAwardOnce.Lock()
	mock.calls.AwardOnce = append(mock.calls.AwardOnce, callInfo)
	mock.lockAwardOnce.Unlock()
	return mock.AwardOnceFunc(ctx, userID, action, key)
}

func (mock *awarderMock) AwardOnceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Action domain.AwardAction
	Key    string
} {
	mock.lockAwardOnce.RLock()
	calls := mock.calls.AwardOnce
	mock.lockAwardOnce.RUnlock()
	return calls
}
