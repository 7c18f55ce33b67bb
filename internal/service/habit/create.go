package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// Create stores a new habit with an empty history and awards habit_created
// in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.Habit

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		h, err := s.habits.Create(ctx, &domain.Habit{
			ID:                uuid.New(),
			UserID:            userID,
			Name:              strings.TrimSpace(input.Name),
			Frequency:         input.Frequency,
			CompletionHistory: domain.NewCompletionSet(),
			Streak:            0,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create habit: %w", err)
		}

		if _, err := s.awards.Award(ctx, userID, domain.AwardHabitCreated); err != nil {
			return err
		}

		created = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "habit created",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", created.ID.String()),
		slog.String("frequency", created.Frequency.String()),
	)

	return created, nil
}
