package gamification

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

type milestone struct {
	badge  domain.Badge
	earned func(domain.BadgeStats) bool
}

var milestones = []milestone{
	{
		badge:  domain.Badge{ID: "first-points", Name: "First Points", Icon: "✨"},
		earned: func(s domain.BadgeStats) bool { return s.Balance >= 10 },
	},
	{
		badge:  domain.Badge{ID: "century", Name: "Century", Icon: "💯"},
		earned: func(s domain.BadgeStats) bool { return s.Balance >= 100 },
	},
	{
		badge:  domain.Badge{ID: "high-achiever", Name: "High Achiever", Icon: "🏆"},
		earned: func(s domain.BadgeStats) bool { return s.Balance >= 1000 },
	},
	{
		badge:  domain.Badge{ID: "week-streak", Name: "Habit Hero", Icon: "🌟"},
		earned: func(s domain.BadgeStats) bool { return s.BestStreak >= 7 },
	},
	{
		badge:  domain.Badge{ID: "month-streak", Name: "Unstoppable", Icon: "🔥"},
		earned: func(s domain.BadgeStats) bool { return s.BestStreak >= 30 },
	},
}

// EarnedBadges returns the badges unlocked by stats, in table order.
func EarnedBadges(stats domain.BadgeStats) []domain.Badge {
	out := []domain.Badge{}
	for _, m := range milestones {
		if m.earned(stats) {
			out = append(out, m.badge)
		}
	}
	return out
}

// Badges derives the caller's badges from their balance and best habit streak.
func (s *Service) Badges(ctx context.Context) ([]domain.Badge, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	balance, err := s.ledger.BalanceOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	best, err := s.streaks.BestStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get best streak: %w", err)
	}

	return EarnedBadges(domain.BadgeStats{Balance: balance, BestStreak: best}), nil
}
