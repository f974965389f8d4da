package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

// ProfileWriteRepository mutates user_profiles rows
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// AddXP increments the profile XP in a single statement and returns the
// post-increment xp and level. The row stays locked until the surrounding
// transaction ends, so concurrent grants for one user serialize here.
// Returns sql.ErrNoRows when the profile does not exist.
func (r *ProfileWriteRepository) AddXP(ctx context.Context, userID uuid.UUID, amount int64) (int64, int, error) {
	const query = `
		UPDATE user_profiles
		SET xp = xp + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING xp, level
	`

	var row struct {
		XP    int64 `db:"xp"`
		Level int   `db:"level"`
	}
	args := []any{userID, amount}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(query, args, row, err)

	return row.XP, row.Level, err
}

// AdvanceLevel moves the profile from fromLevel to fromLevel+1 (compare-and-set).
// Returns sql.ErrNoRows if the stored level is no longer fromLevel.
func (r *ProfileWriteRepository) AdvanceLevel(ctx context.Context, userID uuid.UUID, fromLevel int) (int, error) {
	const query = `
		UPDATE user_profiles
		SET level = level + 1, updated_at = NOW()
		WHERE user_id = $1 AND level = $2
		RETURNING level
	`

	var level int
	args := []any{userID, fromLevel}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &level, query, args...)
	logQuery(query, args, level, err)

	return level, err
}

// ProfileReadRepository reads user_profiles rows
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile of a user or sql.ErrNoRows.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error) {
	const query = `
		SELECT user_id, xp, level, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)
	logQuery(query, []any{userID}, profile, err)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
