package domain

import (
	"time"

	"github.com/google/uuid"
)

// PointEarning is an immutable ledger entry. IDs are assigned by the store and
// strictly increase, so entries with equal timestamps still have a total order.
type PointEarning struct {
	ID          int64
	UserID      uuid.UUID
	Description string
	Points      int
	Action      *AwardAction
	DedupKey    *string
	CreatedAt   time.Time
}

// NewEarning is the input to a ledger append.
type NewEarning struct {
	Description string
	Points      int
	Action      *AwardAction
	// DedupKey, when set, makes the append a no-op returning ErrAlreadyExists
	// if the same owner already has an entry with this key.
	DedupKey *string
}

// PointsAccount is the materialized per-user balance.
type PointsAccount struct {
	UserID           uuid.UUID
	Balance          int
	LeaderboardOptIn bool
}

// BalanceMismatch reports an account whose materialized balance differs from
// the sum of its ledger entries.
type BalanceMismatch struct {
	UserID    uuid.UUID
	Balance   int
	LedgerSum int
}

// LeaderboardEntry is one ranked row of the leaderboard view.
type LeaderboardEntry struct {
	UserID      uuid.UUID
	DisplayName string
	Points      int
	IsSelf      bool
}

// Badge is a milestone derived from a user's points and habit streaks.
type Badge struct {
	ID   string
	Name string
	Icon string
}

// BadgeStats holds the figures badges are derived from.
type BadgeStats struct {
	Balance    int
	BestStreak int
}
