package award

import (
	"context"
	"sync"
)

var _ txHooks = &txHooksMock{}

type txHooksMock struct {
	AfterCommitFunc func(ctx context.Context, fn func())

	calls struct {
		AfterCommit []struct {
			Ctx context.Context
			Fn  func()
		}
	}
	lockAfterCommit sync.RWMutex
}

func (mock *txHooksMock) AfterCommit(ctx context.Context, fn func()) {
	if mock.AfterCommitFunc == nil {
		panic("txHooksMock.AfterCommitFunc: method is nil but txHooks.AfterCommit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func()
	}{Ctx: ctx, Fn: fn}
	mock.lockAfterCommit.Lock()
	mock.calls.AfterCommit = append(mock.calls.AfterCommit, callInfo)
	mock.lockAfterCommit.Unlock()
	mock.AfterCommitFunc(ctx, fn)
}

func (mock *txHooksMock) AfterCommitCalls() []struct {
	Ctx context.Context
	Fn  func()
} {
	mock.lockAfterCommit.RLock()
	calls := mock.calls.AfterCommit
	mock.lockAfterCommit.RUnlock()
	return calls
}
