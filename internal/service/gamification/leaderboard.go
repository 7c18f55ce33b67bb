package gamification

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// SelfLabel replaces the caller's display name on the leaderboard.
const SelfLabel = "You"

// Leaderboard returns the top opted-in balances. With includeSelf the
// caller's row is shown even when they opted out. Without it the caller is
// left out whatever their opt-in, so the board lists other users only.
func (s *Service) Leaderboard(ctx context.Context, includeSelf bool) ([]domain.LeaderboardEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.leaderboard.Top(ctx, userID, s.limits.LeaderboardSize, includeSelf)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	slices.SortFunc(entries, compareEntries)
	if len(entries) > s.limits.LeaderboardSize {
		entries = entries[:s.limits.LeaderboardSize]
	}

	for i := range entries {
		if entries[i].UserID == userID {
			entries[i].IsSelf = true
			entries[i].DisplayName = SelfLabel
		}
	}

	return entries, nil
}

// compareEntries orders by points descending, then user id ascending, so no
// two rows ever compare equal.
func compareEntries(a, b domain.LeaderboardEntry) int {
	if a.Points != b.Points {
		if a.Points > b.Points {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.UserID[:], b.UserID[:])
}

// SetOptIn flips whether other users see the caller on the leaderboard.
func (s *Service) SetOptIn(ctx context.Context, optIn bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.leaderboard.SetOptIn(ctx, userID, optIn); err != nil {
		return fmt.Errorf("set leaderboard opt-in: %w", err)
	}

	s.log.InfoContext(ctx, "leaderboard opt-in changed",
		slog.String("user_id", userID.String()),
		slog.Bool("opt_in", optIn),
	)
	return nil
}
