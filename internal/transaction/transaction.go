package transaction

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
)

// Manager runs units of work inside a database transaction carried by the context.
type Manager struct {
	db      *sqlx.DB
	timeout time.Duration // upper bound for one transaction, 0 disables it
}

// NewManager creates a transaction manager over db.
func NewManager(db *sqlx.DB, timeout time.Duration) *Manager {
	return &Manager{db: db, timeout: timeout}
}

// Do runs fn in a transaction. The transaction is committed when fn returns nil
// and rolled back on error, panic or context expiry. If ctx already carries a
// transaction, fn joins it and the outer caller owns commit and rollback.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	hooks := &[]func(){}
	txCtx := context.WithValue(setTxToContext(ctx, tx), hooksKey, hooks)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}

	for _, hook := range *hooks {
		hook()
	}
	return nil
}

// AfterCommit schedules fn to run once the transaction carried by ctx commits.
// Hooks of a rolled back transaction are dropped. Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey).(*[]func())
	if !ok {
		fn()
		return
	}
	*hooks = append(*hooks, fn)
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	txKey contextKey = iota
	hooksKey
)

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
