package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/service/streak"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// ToggleResult is the outcome of flipping today's completion.
type ToggleResult struct {
	Habit         *domain.Habit
	MarkedDone    bool
	PointsAwarded int
}

// ToggleToday marks the habit done today, or undoes today's mark. The habit
// row is locked for the duration, so concurrent toggles by the same user
// apply one after the other. Every mark as done awards
// habit_streak_incremented, including a restart after a gap, but at most once
// per habit per day.
func (s *Service) ToggleToday(ctx context.Context, input ToggleInput) (*ToggleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	today := s.today()
	var result ToggleResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.habits.GetByIDForUpdate(ctx, userID, input.HabitID)
		if err != nil {
			return fmt.Errorf("get habit: %w", err)
		}

		next := streak.Toggle(current.CompletionHistory, today)

		updated, err := s.habits.UpdateProgress(ctx, userID, current.ID, next.History, next.Streak)
		if err != nil {
			return fmt.Errorf("update habit progress: %w", err)
		}

		result = ToggleResult{Habit: updated, MarkedDone: next.MarkedDone}

		if next.MarkedDone {
			earning, awarded, err := s.awards.AwardOnce(ctx, userID, domain.AwardHabitStreakIncremented, dayKey(current.ID, today))
			if err != nil {
				return err
			}
			if awarded {
				result.PointsAwarded = earning.Points
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "habit toggled",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", input.HabitID.String()),
		slog.Bool("marked_done", result.MarkedDone),
		slog.Int("streak", result.Habit.Streak),
		slog.Int("points_awarded", result.PointsAwarded),
	)

	return &result, nil
}
