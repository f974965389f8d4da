package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the referenced user or profile does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for non-positive XP amounts, out-of-range nutrition values and malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStorage is returned when a transaction or statement fails for infrastructure reasons.
	ErrStorage = errors.New("storage failure")
	// ErrConflict is returned when a concurrent modification could not be reconciled. Callers may retry.
	ErrConflict = errors.New("concurrent modification conflict")
)

// Postgres error codes that carry domain meaning.
const (
	pgNumericOutOfRange    = "22003"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// classify maps a raw storage error onto the error taxonomy.
// Errors already classified are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrStorage) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		case pgNumericOutOfRange:
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: timed out: %w", ErrStorage, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
