package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 0, 1)
	writer := NewScanWriteRepository(db, nil)
	reader := NewScanReadRepository(db)

	scan, err := writer.Save(ctx, userID, models.ScanKindFood, "food.jpg", []byte(`{"food_name":"Apple","calories":95}`))
	require.NoError(t, err)
	assert.Equal(t, models.ScanKindFood, scan.Kind)
	assert.Equal(t, "food.jpg", scan.ImageURL)
	assert.JSONEq(t, `{"food_name":"Apple","calories":95}`, string(scan.Result))

	_, err = writer.Save(ctx, userID, models.ScanKindBody, "", []byte(`{"body_type":"Athletic"}`))
	require.NoError(t, err)
	_, err = writer.Save(ctx, userID, models.ScanKindBody, "", []byte(`{"body_type":"Athletic"}`))
	require.NoError(t, err)

	// An old scan outside the trailing window.
	_, err = db.Exec(`INSERT INTO scans (user_id, kind, result, created_at) VALUES ($1, 'face', '{}', NOW() - INTERVAL '10 days')`, userID)
	require.NoError(t, err)

	recent, err := reader.ListRecentByUserID(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 4)

	counts, err := reader.CountByUserIDSince(ctx, userID, time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, models.ScanCounts{BodyScans: 2, FaceScans: 0, FoodScans: 1, TotalScans: 3}, *counts)
}

func TestUserReadRepository_ListIDs(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	first := createUser(t, db, 0, 1)
	second := createUser(t, db, 0, 1)

	ids, err := NewUserReadRepository(db).ListIDs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, ids)
}
