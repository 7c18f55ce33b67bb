// Package ledger implements the append-only points ledger and the
// materialized per-user balance using PostgreSQL.
//
// Every append inserts one point_earnings row and increments user_points in
// the same transaction, so the balance always equals the sum of the ledger.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

const (
	earningsTable = "point_earnings"
	accountsTable = "user_points"
)

var earningColumns = []string{"id", "user_id", "description", "points", "action", "dedup_key", "created_at"}

// Repo provides ledger and balance persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new ledger repository. Appends open their own transaction
// unless the context already carries one.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append records an earning and adds its points to the owner's balance.
//
// If e.DedupKey is set and the owner already has an entry with that key,
// nothing is written and domain.ErrAlreadyExists is returned. The check uses
// ON CONFLICT DO NOTHING so a duplicate does not abort an enclosing transaction.
func (r *Repo) Append(ctx context.Context, userID uuid.UUID, e domain.NewEarning) (*domain.PointEarning, error) {
	var out *domain.PointEarning

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		earning, err := r.insertEarning(ctx, userID, e)
		if err != nil {
			return err
		}
		if err := r.addToBalance(ctx, userID, e.Points); err != nil {
			return err
		}
		out = earning
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) insertEarning(ctx context.Context, userID uuid.UUID, e domain.NewEarning) (*domain.PointEarning, error) {
	var action *string
	if e.Action != nil {
		s := e.Action.String()
		action = &s
	}

	insert := postgres.Builder().
		Insert(earningsTable).
		Columns("user_id", "description", "points", "action", "dedup_key").
		Values(userID, e.Description, e.Points, action, e.DedupKey)
	if e.DedupKey != nil {
		insert = insert.Suffix("ON CONFLICT (user_id, dedup_key) DO NOTHING")
	}
	insert = insert.Suffix("RETURNING id, user_id, description, points, action, dedup_key, created_at")

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert earning: %w", err)
	}

	var row earningRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...)
	if postgres.IsNoRows(err) && e.DedupKey != nil {
		return nil, fmt.Errorf("point_earning %s: %w", *e.DedupKey, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "point_earning of user", userID)
	}

	earning := row.toDomain()
	return &earning, nil
}

// addToBalance is a single-statement increment. Concurrent appends for the
// same user serialize on the user_points row lock.
func (r *Repo) addToBalance(ctx context.Context, userID uuid.UUID, points int) error {
	sql, args, err := postgres.Builder().
		Insert(accountsTable).
		Columns("user_id", "points").
		Values(userID, points).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET points = user_points.points + EXCLUDED.points").
		ToSql()
	if err != nil {
		return fmt.Errorf("build balance upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "points_account", userID)
	}
	return nil
}

// Repair resets the owner's balance to the sum of the ledger and returns the
// corrected balance. The ledger is authoritative.
func (r *Repo) Repair(ctx context.Context, userID uuid.UUID) (int, error) {
	sum := postgres.Builder().
		Select("COALESCE(SUM(points), 0)").
		From(earningsTable).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := postgres.Builder().
		Update(accountsTable).
		Set("points", squirrel.Expr("(?)", sum)).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING points").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build repair: %w", err)
	}

	var balance int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&balance); err != nil {
		return 0, postgres.MapError(err, "points_account", userID)
	}
	return balance, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// BalanceOf returns the materialized balance, 0 for users without an account row.
func (r *Repo) BalanceOf(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("points").
		From(accountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build balance query: %w", err)
	}

	var balance int
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&balance)
	if postgres.IsNoRows(err) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "points_account", userID)
	}
	return balance, nil
}

// RecentEarnings returns up to limit entries, newest first. Ordering is by id,
// which strictly increases with insertion.
func (r *Repo) RecentEarnings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PointEarning, error) {
	sql, args, err := postgres.Builder().
		Select(earningColumns...).
		From(earningsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build earnings query: %w", err)
	}

	var rows []earningRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "point_earnings of user", userID)
	}

	out := make([]domain.PointEarning, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Reconcile lists every account whose balance differs from its ledger sum.
func (r *Repo) Reconcile(ctx context.Context) ([]domain.BalanceMismatch, error) {
	sql, args, err := postgres.Builder().
		Select("up.user_id", "up.points AS balance", "COALESCE(SUM(pe.points), 0) AS ledger_sum").
		From(accountsTable + " up").
		LeftJoin(earningsTable + " pe ON pe.user_id = up.user_id").
		GroupBy("up.user_id", "up.points").
		Having("up.points <> COALESCE(SUM(pe.points), 0)").
		OrderBy("up.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reconcile query: %w", err)
	}

	var rows []mismatchRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "points_accounts", "all")
	}

	out := make([]domain.BalanceMismatch, len(rows))
	for i, row := range rows {
		out[i] = domain.BalanceMismatch{UserID: row.UserID, Balance: row.Balance, LedgerSum: row.LedgerSum}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type earningRow struct {
	ID          int64     `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Description string    `db:"description"`
	Points      int       `db:"points"`
	Action      *string   `db:"action"`
	DedupKey    *string   `db:"dedup_key"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r earningRow) toDomain() domain.PointEarning {
	e := domain.PointEarning{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Points:      r.Points,
		DedupKey:    r.DedupKey,
		CreatedAt:   r.CreatedAt,
	}
	if r.Action != nil {
		a := domain.AwardAction(*r.Action)
		e.Action = &a
	}
	return e
}

type mismatchRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Balance   int       `db:"balance"`
	LedgerSum int       `db:"ledger_sum"`
}
