package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/service/streak"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// ReplaceHistory stores a client-supplied completion history. The streak is
// always recomputed here; whatever streak the client believes in is ignored.
// A streak increase relative to the stored value awards
// habit_streak_incremented under the same daily key as ToggleToday.
func (s *Service) ReplaceHistory(ctx context.Context, input ReplaceHistoryInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	today := s.today()
	history := input.history()
	var updated *domain.Habit

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.habits.GetByIDForUpdate(ctx, userID, input.HabitID)
		if err != nil {
			return fmt.Errorf("get habit: %w", err)
		}

		recomputed := streak.Recompute(history, today)

		updated, err = s.habits.UpdateProgress(ctx, userID, current.ID, history, recomputed)
		if err != nil {
			return fmt.Errorf("update habit progress: %w", err)
		}

		if recomputed > current.Streak {
			if _, _, err := s.awards.AwardOnce(ctx, userID, domain.AwardHabitStreakIncremented, dayKey(current.ID, today)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "habit history replaced",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", input.HabitID.String()),
		slog.Int("days", len(history)),
		slog.Int("streak", updated.Streak),
	)

	return updated, nil
}
