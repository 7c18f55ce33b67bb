// Package gamification serves the read side of points: balance, recent
// earnings, the leaderboard and badges, plus the leaderboard opt-in flag.
package gamification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

type ledgerRepo interface {
	BalanceOf(ctx context.Context, userID uuid.UUID) (int, error)
	RecentEarnings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PointEarning, error)
}

type leaderboardRepo interface {
	Top(ctx context.Context, callerID uuid.UUID, limit int, includeSelf bool) ([]domain.LeaderboardEntry, error)
	SetOptIn(ctx context.Context, userID uuid.UUID, optIn bool) error
}

type streakRepo interface {
	BestStreak(ctx context.Context, userID uuid.UUID) (int, error)
}

// Limits bounds the size of list reads.
type Limits struct {
	LeaderboardSize      int
	DefaultEarningsLimit int
	MaxEarningsLimit     int
}

// Service implements the gamification read operations.
type Service struct {
	ledger      ledgerRepo
	leaderboard leaderboardRepo
	streaks     streakRepo
	limits      Limits
	log         *slog.Logger
}

// NewService creates a new gamification service.
func NewService(
	log *slog.Logger,
	ledger ledgerRepo,
	leaderboard leaderboardRepo,
	streaks streakRepo,
	limits Limits,
) *Service {
	return &Service{
		ledger:      ledger,
		leaderboard: leaderboard,
		streaks:     streaks,
		limits:      limits,
		log:         log.With("service", "gamification"),
	}
}
