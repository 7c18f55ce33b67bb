package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a generated username. The database trigger
// gives it an empty points account (balance 0, opted in).
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserNamed(t, pool, "user-"+uniqueSuffix())
}

// SeedUserNamed creates a user with the given username.
func SeedUserNamed(t *testing.T, pool *pgxpool.Pool, username string) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "-" + uniqueSuffix() + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Email, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedHabit inserts a habit with the given history and streak as-is, without
// recomputing anything. Useful for building "yesterday" states.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, freq domain.HabitFrequency, history []domain.Date, streak int) domain.Habit {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	habit := domain.Habit{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              name,
		Frequency:         freq,
		CompletionHistory: domain.NewCompletionSet(history...),
		Streak:            streak,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	raw, err := json.Marshal(habit.CompletionHistory.Strings())
	if err != nil {
		t.Fatalf("testhelper: SeedHabit marshal history: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO habits (id, user_id, name, frequency, streak, completion_history, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		habit.ID, habit.UserID, habit.Name, string(habit.Frequency), habit.Streak, raw, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabit insert: %v", err)
	}

	return habit
}

// SetOptIn flips a user's leaderboard flag directly.
func SetOptIn(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, optIn bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE user_points SET opt_in_leaderboard = $2 WHERE user_id = $1`, userID, optIn)
	if err != nil {
		t.Fatalf("testhelper: SetOptIn: %v", err)
	}
}

// ForceBalance overwrites a balance without a ledger row, producing a drifted
// account for reconciliation tests.
func ForceBalance(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, points int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE user_points SET points = $2 WHERE user_id = $1`, userID, points)
	if err != nil {
		t.Fatalf("testhelper: ForceBalance: %v", err)
	}
}
