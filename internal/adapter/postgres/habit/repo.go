// Package habit implements the Habit repository using PostgreSQL.
// Completion history is stored as a sorted JSONB array of YYYY-MM-DD strings.
package habit

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

const table = "habits"

var columns = []string{
	"id", "user_id", "name", "frequency", "streak", "completion_history", "created_at", "updated_at",
}

// Repo provides habit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new habit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the user's habits in creation order. An empty slice is
// returned when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")

	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "habits of user", userID)
	}

	habits := make([]domain.Habit, 0, len(rows))
	for _, row := range rows {
		h, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// GetByIDForUpdate loads a habit and locks its row until the surrounding
// transaction ends. Habits of other users are reported as domain.ErrNotFound.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": habitID, "user_id": userID}).
		Suffix("FOR UPDATE")

	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "habit", habitID)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("habit %s: %w", habitID, domain.ErrNotFound)
	}

	h, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// BestStreak returns the highest cached streak over the user's habits, 0 when
// the user has no habits.
func (r *Repo) BestStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("COALESCE(MAX(streak), 0)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build best streak query: %w", err)
	}

	var best int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&best); err != nil {
		return 0, postgres.MapError(err, "habits of user", userID)
	}
	return best, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new habit and returns the persisted row.
func (r *Repo) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	history, err := encodeHistory(h.CompletionHistory)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(h.ID, h.UserID, h.Name, string(h.Frequency), h.Streak, history, h.CreatedAt, h.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.returningOne(ctx, query, h.ID)
}

// UpdateProgress stores a new completion history together with the streak
// derived from it.
func (r *Repo) UpdateProgress(ctx context.Context, userID, habitID uuid.UUID, history domain.CompletionSet, streakValue int) (*domain.Habit, error) {
	encoded, err := encodeHistory(history)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder().
		Update(table).
		Set("completion_history", encoded).
		Set("streak", streakValue).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": habitID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.returningOne(ctx, query, habitID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) selectRows(ctx context.Context, query sqlizer) ([]habitRow, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habit query: %w", err)
	}

	var rows []habitRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) returningOne(ctx context.Context, query sqlizer, id uuid.UUID) (*domain.Habit, error) {
	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("habit %s: %w", id, domain.ErrNotFound)
	}

	h, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &h, nil
}
