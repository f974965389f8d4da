package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

type scanRow struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Kind      models.ScanKind `db:"kind"`
	ImageURL  string          `db:"image_url"`
	Result    []byte          `db:"result"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r scanRow) toModel() models.ScanDB {
	return models.ScanDB{
		ID:        r.ID,
		UserID:    r.UserID,
		Kind:      r.Kind,
		ImageURL:  r.ImageURL,
		Result:    json.RawMessage(r.Result),
		CreatedAt: r.CreatedAt,
	}
}

// ScanWriteRepository stores completed scans
type ScanWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewScanWriteRepository(db *sqlx.DB, txGetter TxGetter) *ScanWriteRepository {
	return &ScanWriteRepository{db: db, txGetter: txGetter}
}

// Save stores a scan with its analysis result.
func (r *ScanWriteRepository) Save(ctx context.Context, userID uuid.UUID, kind models.ScanKind, imageURL string, result json.RawMessage) (*models.ScanDB, error) {
	const query = `
		INSERT INTO scans (id, user_id, kind, image_url, result, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, kind, image_url, result, created_at
	`

	var row scanRow
	args := []any{uuid.New(), userID, string(kind), imageURL, string(result)}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(query, args, row.ID, err)

	if err != nil {
		return nil, err
	}
	scan := row.toModel()
	return &scan, nil
}

// ScanReadRepository reads scans
type ScanReadRepository struct {
	db *sqlx.DB
}

func NewScanReadRepository(db *sqlx.DB) *ScanReadRepository {
	return &ScanReadRepository{db: db}
}

// ListRecentByUserID returns the newest scans of a user across all kinds.
func (r *ScanReadRepository) ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanDB, error) {
	const query = `
		SELECT id, user_id, kind, image_url, result, created_at
		FROM scans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []scanRow
	err := r.db.SelectContext(ctx, &rows, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(rows), err)

	scans := make([]models.ScanDB, 0, len(rows))
	for _, row := range rows {
		scans = append(scans, row.toModel())
	}
	return scans, err
}

// CountByUserIDSince counts scans per kind created at or after since.
func (r *ScanReadRepository) CountByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) (*models.ScanCounts, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'body') AS body_scans,
			COUNT(*) FILTER (WHERE kind = 'face') AS face_scans,
			COUNT(*) FILTER (WHERE kind = 'food') AS food_scans
		FROM scans
		WHERE user_id = $1 AND created_at >= $2
	`

	var counts models.ScanCounts
	err := r.db.GetContext(ctx, &counts, query, userID, since)
	counts.TotalScans = counts.BodyScans + counts.FaceScans + counts.FoodScans
	logQuery(query, []any{userID, since}, counts, err)

	if err != nil {
		return nil, err
	}
	return &counts, nil
}
