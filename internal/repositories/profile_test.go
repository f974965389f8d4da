package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileWriteRepository_AddXP(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 50, 1)
	writer := NewProfileWriteRepository(db, nil)

	xp, level, err := writer.AddXP(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(60), xp)
	assert.Equal(t, 1, level)

	xp, _, err = writer.AddXP(ctx, userID, 40)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), xp)

	_, _, err = writer.AddXP(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProfileWriteRepository_AdvanceLevel(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 120, 1)
	writer := NewProfileWriteRepository(db, nil)

	level, err := writer.AdvanceLevel(ctx, userID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, level)

	// Stale expected level loses the compare-and-set.
	_, err = writer.AdvanceLevel(ctx, userID, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, level = getProfile(t, db, userID)
	assert.Equal(t, 2, level)
}

func TestProfileReadRepository_GetByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 150, 2)
	reader := NewProfileReadRepository(db)

	t.Run("existing profile", func(t *testing.T) {
		profile, err := reader.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, int64(150), profile.XP)
		assert.Equal(t, 2, profile.Level)
	})

	t.Run("unknown profile", func(t *testing.T) {
		profile, err := reader.GetByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, profile)
	})
}

func TestXPLogRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 0, 1)
	writer := NewXPLogWriteRepository(db, nil)
	reader := NewXPLogReadRepository(db)

	entry, err := writer.Save(ctx, userID, "body_scan", 10, "scan")
	require.NoError(t, err)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "body_scan", entry.Action)
	assert.Equal(t, int64(10), entry.XPAmount)
	assert.Equal(t, "scan", entry.Source)

	_, err = writer.Save(ctx, userID, "ai_plan_generated", 20, "ai")
	require.NoError(t, err)

	total, err := reader.SumByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), total)

	entries, err := reader.ListByUserID(ctx, userID, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	total, err = reader.SumByUserID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Zero(t, total)

	t.Run("non-positive amount violates the ledger constraint", func(t *testing.T) {
		_, err := writer.Save(ctx, userID, "x", 0, "scan")
		assert.Error(t, err)
	})
}

func TestUserDeletion_CascadesToChildren(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, 0, 1)
	_, err := NewXPLogWriteRepository(db, nil).Save(ctx, userID, "food_scan", 10, "scan")
	require.NoError(t, err)
	_, err = NewFeedWriteRepository(db, nil).Save(ctx, userID, "scan", []byte(`{"type":"food_scan"}`))
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	require.NoError(t, err)

	for _, table := range []string{"user_profiles", "xp_logs", "user_feed", "nutrition_log", "scans"} {
		assert.Zero(t, countRows(t, db, table, userID), table)
	}
}
