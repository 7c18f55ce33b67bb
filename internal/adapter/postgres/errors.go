package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

// sqlStates maps the SQLSTATE codes that carry domain meaning. Everything
// else, including the ledger's append-only trigger (restrict_violation), is a
// storage failure.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: dedup key taken
	"23503": domain.ErrNotFound,      // foreign_key_violation: owner gone
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError wraps err with the domain sentinel it stands for, prefixed by
// "<entity> <id>". Context cancellation passes through unmapped so callers
// can tell a client hang-up from a store failure.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if IsNoRows(err) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStates[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, id, sentinel)
		}
	}

	return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrStorage, err)
}

// IsNoRows reports an empty result from pgx or from pgxscan.Get.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}
