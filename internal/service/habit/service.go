// Package habit implements the habit store: creating and listing habits,
// toggling today's completion and the weekly summary. Every history change
// recomputes the streak and any award in the same transaction.
package habit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

type habitRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	GetByIDForUpdate(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	UpdateProgress(ctx context.Context, userID, habitID uuid.UUID, history domain.CompletionSet, streak int) (*domain.Habit, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type awarder interface {
	Award(ctx context.Context, userID uuid.UUID, action domain.AwardAction) (*domain.PointEarning, error)
	AwardOnce(ctx context.Context, userID uuid.UUID, action domain.AwardAction, key string) (*domain.PointEarning, bool, error)
}

// Service provides habit operations for the authenticated user.
type Service struct {
	habits habitRepo
	tx     txManager
	awards awarder
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new habit service using the wall clock.
func NewService(log *slog.Logger, habits habitRepo, tx txManager, awards awarder) *Service {
	return &Service{
		habits: habits,
		tx:     tx,
		awards: awards,
		now:    time.Now,
		log:    log.With("service", "habit"),
	}
}

// WithClock replaces the clock "today" is derived from.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}

// dayKey identifies the streak award for one habit on one day, so undoing and
// redoing a completion cannot earn points twice.
func dayKey(habitID uuid.UUID, day domain.Date) string {
	return fmt.Sprintf("habit:%s:%s", habitID, day)
}
