// Package leaderboard implements ranked reads over points accounts and the
// per-user opt-in flag.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

// Repo provides leaderboard reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new leaderboard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Email    string    `db:"email"`
	Points   int       `db:"points"`
}

// Top returns up to limit accounts ordered by points DESC, user_id ASC.
// Opted-in accounts are always candidates. The caller's own account is added
// when includeSelf is true, even if opted out, and removed when it is false.
func (r *Repo) Top(ctx context.Context, callerID uuid.UUID, limit int, includeSelf bool) ([]domain.LeaderboardEntry, error) {
	query := postgres.Builder().
		Select("up.user_id", "u.username", "u.email", "up.points").
		From("user_points up").
		Join("users u ON u.id = up.user_id").
		OrderBy("up.points DESC", "up.user_id ASC").
		Limit(uint64(limit))

	if includeSelf {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"up.opt_in_leaderboard": true},
			squirrel.Eq{"up.user_id": callerID},
		})
	} else {
		query = query.Where(squirrel.And{
			squirrel.Eq{"up.opt_in_leaderboard": true},
			squirrel.NotEq{"up.user_id": callerID},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "leaderboard for user", callerID)
	}

	out := make([]domain.LeaderboardEntry, len(rows))
	for i, row := range rows {
		user := domain.User{ID: row.UserID, Username: row.Username, Email: row.Email}
		out[i] = domain.LeaderboardEntry{
			UserID:      row.UserID,
			DisplayName: user.DisplayName(),
			Points:      row.Points,
			IsSelf:      row.UserID == callerID,
		}
	}
	return out, nil
}

// SetOptIn changes only the visibility flag. The account row is created with
// a zero balance if it does not exist yet.
func (r *Repo) SetOptIn(ctx context.Context, userID uuid.UUID, optIn bool) error {
	sql, args, err := postgres.Builder().
		Insert("user_points").
		Columns("user_id", "opt_in_leaderboard").
		Values(userID, optIn).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET opt_in_leaderboard = EXCLUDED.opt_in_leaderboard").
		ToSql()
	if err != nil {
		return fmt.Errorf("build opt-in upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "points_account", userID)
	}
	return nil
}
