package award

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	AwardCommittedFunc func(action string, points int)

	calls struct {
		AwardCommitted []struct {
			Action string
			Points int
		}
	}
	lockAwardCommitted sync.RWMutex
}

func (mock *recorderMock) AwardCommitted(action string, points int) {
	if mock.AwardCommittedFunc == nil {
		panic("recorderMock.AwardCommittedFunc: method is nil but recorder.AwardCommitted was just called")
	}
	callInfo := struct {
		Action string
		Points int
	}{Action: action, Points: points}
	mock.lockAwardCommitted.Lock()
	mock.calls.AwardCommitted = append(mock.calls.AwardCommitted, callInfo)
	mock.lockAwardCommitted.Unlock()
	mock.AwardCommittedFunc(action, points)
}

func (mock *recorderMock) AwardCommittedCalls() []struct {
	Action string
	Points int
} {
	mock.lockAwardCommitted.RLock()
	calls := mock.calls.AwardCommitted
	mock.lockAwardCommitted.RUnlock()
	return calls
}
