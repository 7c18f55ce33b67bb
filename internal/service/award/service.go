// Package award maps domain actions to their fixed point values and appends
// them to the points ledger.
package award

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

type ledger interface {
	Append(ctx context.Context, userID uuid.UUID, e domain.NewEarning) (*domain.PointEarning, error)
}

type txHooks interface {
	AfterCommit(ctx context.Context, fn func())
}

type recorder interface {
	AwardCommitted(action string, points int)
}

// Service is the award dispatcher. Callers invoke it only after their own
// write has succeeded, ideally inside the same transaction.
type Service struct {
	ledger  ledger
	hooks   txHooks
	metrics recorder
	log     *slog.Logger
}

// NewService creates a new award dispatcher.
func NewService(log *slog.Logger, ledger ledger, hooks txHooks, metrics recorder) *Service {
	return &Service{
		ledger:  ledger,
		hooks:   hooks,
		metrics: metrics,
		log:     log.With("service", "award"),
	}
}

// Award appends the action's fixed value to the user's ledger.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, action domain.AwardAction) (*domain.PointEarning, error) {
	return s.append(ctx, userID, action, nil)
}

// AwardOnce is Award guarded by a per-user key. A second call with the same
// key is a no-op reporting awarded=false.
func (s *Service) AwardOnce(ctx context.Context, userID uuid.UUID, action domain.AwardAction, key string) (*domain.PointEarning, bool, error) {
	if key == "" {
		return nil, false, domain.NewValidationError("dedup_key", "required")
	}

	earning, err := s.append(ctx, userID, action, &key)
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.DebugContext(ctx, "award already granted",
			slog.String("user_id", userID.String()),
			slog.String("action", action.String()),
			slog.String("key", key),
		)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return earning, true, nil
}

func (s *Service) append(ctx context.Context, userID uuid.UUID, action domain.AwardAction, key *string) (*domain.PointEarning, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if !action.IsValid() {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	a := action
	earning, err := s.ledger.Append(ctx, userID, domain.NewEarning{
		Description: action.Description(),
		Points:      action.Points(),
		Action:      &a,
		DedupKey:    key,
	})
	if err != nil {
		return nil, fmt.Errorf("award %s: %w", action, err)
	}

	s.hooks.AfterCommit(ctx, func() {
		s.metrics.AwardCommitted(action.String(), earning.Points)
		s.log.InfoContext(ctx, "points awarded",
			slog.String("user_id", userID.String()),
			slog.String("action", action.String()),
			slog.Int("points", earning.Points),
			slog.Int64("earning_id", earning.ID),
		)
	})

	return earning, nil
}
