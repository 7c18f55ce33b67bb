package award

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	AppendFunc func(ctx context.Context, userID uuid.UUID, e domain.NewEarning) (*domain.PointEarning, error)

	calls struct {
		Append []struct {
			Ctx    context.Context
			UserID uuid.UUID
			E      domain.NewEarning
		}
	}
	lockAppend sync.RWMutex
}

func (mock *ledgerMock) Append(ctx context.Context, userID uuid.UUID, e domain.NewEarning) (*domain.PointEarning, error) {
	if mock.AppendFunc == nil {
		panic("ledgerMock.AppendFunc: method is nil but ledger.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		E      domain.NewEarning
	}{Ctx: ctx, UserID: userID, E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, userID, e)
}

func (mock *ledgerMock) AppendCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	E      domain.NewEarning
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
