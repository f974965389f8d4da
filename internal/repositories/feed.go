package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

// feedRow scans JSONB content as bytes regardless of how the driver returns it.
type feedRow struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Type      models.FeedType `db:"type"`
	Content   []byte          `db:"content"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r feedRow) toModel() models.FeedEntryDB {
	return models.FeedEntryDB{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      r.Type,
		Content:   json.RawMessage(r.Content),
		CreatedAt: r.CreatedAt,
	}
}

// FeedWriteRepository appends to user_feed
type FeedWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFeedWriteRepository(db *sqlx.DB, txGetter TxGetter) *FeedWriteRepository {
	return &FeedWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one feed entry. clock_timestamp keeps entries written in the
// same transaction in insertion order.
func (r *FeedWriteRepository) Save(ctx context.Context, userID uuid.UUID, feedType models.FeedType, content json.RawMessage) (*models.FeedEntryDB, error) {
	const query = `
		INSERT INTO user_feed (id, user_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, clock_timestamp())
		RETURNING id, user_id, type, content, created_at
	`

	var row feedRow
	args := []any{uuid.New(), userID, string(feedType), string(content)}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(query, args, row.ID, err)

	if err != nil {
		return nil, err
	}
	entry := row.toModel()
	return &entry, nil
}

// FeedReadRepository reads user_feed
type FeedReadRepository struct {
	db *sqlx.DB
}

func NewFeedReadRepository(db *sqlx.DB) *FeedReadRepository {
	return &FeedReadRepository{db: db}
}

// ListByUserID returns the newest feed entries of a user.
func (r *FeedReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.FeedEntryDB, error) {
	const query = `
		SELECT id, user_id, type, content, created_at
		FROM user_feed
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []feedRow
	err := r.db.SelectContext(ctx, &rows, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(rows), err)

	entries := make([]models.FeedEntryDB, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toModel())
	}
	return entries, err
}
