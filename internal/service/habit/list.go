package habit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/service/streak"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// List returns the user's habits with their stored streaks.
func (s *Service) List(ctx context.Context) ([]domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// WeeklySummary reports how many Daily completions fall in the last seven days
// relative to every habit's possible completions.
func (s *Service) WeeklySummary(ctx context.Context) (domain.WeeklySummary, error) {
	habits, err := s.List(ctx)
	if err != nil {
		return domain.WeeklySummary{}, err
	}
	return streak.WeeklyCompletion(habits, s.today()), nil
}
