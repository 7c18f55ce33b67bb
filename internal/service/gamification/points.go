package gamification

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// Points returns the caller's materialized balance.
func (s *Service) Points(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	balance, err := s.ledger.BalanceOf(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// RecentEarnings returns the caller's newest ledger entries first. A zero
// limit selects the configured default.
func (s *Service) RecentEarnings(ctx context.Context, limit int) ([]domain.PointEarning, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit == 0 {
		limit = s.limits.DefaultEarningsLimit
	}
	if limit < 0 || limit > s.limits.MaxEarningsLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.limits.MaxEarningsLimit))
	}

	earnings, err := s.ledger.RecentEarnings(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list earnings: %w", err)
	}
	return earnings, nil
}
