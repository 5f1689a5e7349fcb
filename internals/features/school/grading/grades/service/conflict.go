package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ConflictClassifier decides whether a failed write was a unique-constraint
// violation (a concurrent-capture race) as opposed to any other failure.
// Injectable so deployments on a different store can swap the strategy.
type ConflictClassifier interface {
	IsUniqueViolation(err error) bool
}

const pgUniqueViolationCode = "23505"

// PostgresConflictClassifier checks the structured SQLSTATE first and falls
// back to the driver's message text only when no *pgconn.PgError is in the
// chain (e.g. the error crossed a boundary that stripped the type). The
// fallback matches the exact Postgres phrasing, never a generic "constraint"
// substring, so failures on unrelated constraints are not swallowed.
type PostgresConflictClassifier struct {
	// ConstraintName, when set, narrows classification to violations of that
	// specific index. Empty matches any unique violation.
	ConstraintName string
}

func (cc PostgresConflictClassifier) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolationCode {
			return false
		}
		if cc.ConstraintName != "" && pgErr.ConstraintName != "" {
			return pgErr.ConstraintName == cc.ConstraintName
		}
		return true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Secondary heuristic only: structured code unavailable.
	s := strings.ToLower(err.Error())
	if !strings.Contains(s, "duplicate key value violates unique constraint") &&
		!strings.Contains(s, "sqlstate 23505") {
		return false
	}
	if cc.ConstraintName != "" {
		return strings.Contains(s, strings.ToLower(cc.ConstraintName))
	}
	return true
}
