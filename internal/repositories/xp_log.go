package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

// XPLogWriteRepository appends to the xp_logs ledger
type XPLogWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewXPLogWriteRepository(db *sqlx.DB, txGetter TxGetter) *XPLogWriteRepository {
	return &XPLogWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one ledger entry and returns it as stored.
func (r *XPLogWriteRepository) Save(ctx context.Context, userID uuid.UUID, action string, amount int64, source string) (*models.XPLogEntryDB, error) {
	const query = `
		INSERT INTO xp_logs (id, user_id, action, xp_amount, source, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, action, xp_amount, source, created_at
	`

	var entry models.XPLogEntryDB
	args := []any{uuid.New(), userID, action, amount, source}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, args...)
	logQuery(query, args, entry.ID, err)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// XPLogReadRepository reads the xp_logs ledger
type XPLogReadRepository struct {
	db *sqlx.DB
}

func NewXPLogReadRepository(db *sqlx.DB) *XPLogReadRepository {
	return &XPLogReadRepository{db: db}
}

// SumByUserID returns the lifetime XP recorded for a user.
func (r *XPLogReadRepository) SumByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(xp_amount), 0)
		FROM xp_logs
		WHERE user_id = $1
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)
	logQuery(query, []any{userID}, total, err)

	return total, err
}

// ListByUserID returns the newest ledger entries of a user.
func (r *XPLogReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.XPLogEntryDB, error) {
	const query = `
		SELECT id, user_id, action, xp_amount, source, created_at
		FROM xp_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	entries := []models.XPLogEntryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(entries), err)

	return entries, err
}
