package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/migrations"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/repositories"
	"github.com/sbilibin2017/gw-levelup/internal/services"
	"github.com/sbilibin2017/gw-levelup/internal/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type engine struct {
	db        *sqlx.DB
	leveling  *services.LevelingService
	nutrition *services.NutritionService
	feed      *services.FeedService
	scans     *services.ScanService
	weekly    *services.WeeklySummaryService
	scanRepo  *repositories.ScanWriteRepository
}

func setupEngine(t *testing.T) *engine {
	logger.Initialize("debug")
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		db, err = sqlx.Connect("pgx", dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	db.SetMaxOpenConns(20)

	require.NoError(t, migrations.Up(db.DB))

	t.Cleanup(func() {
		db.Close()
		container.Terminate(ctx)
	})

	txm := transaction.NewManager(db, 10*time.Second)
	feedWrite := repositories.NewFeedWriteRepository(db, transaction.GetTxFromContext)
	scanWrite := repositories.NewScanWriteRepository(db, transaction.GetTxFromContext)

	leveling := services.NewLevelingService(
		txm,
		repositories.NewProfileWriteRepository(db, transaction.GetTxFromContext),
		repositories.NewXPLogWriteRepository(db, transaction.GetTxFromContext),
		feedWrite,
		nil,
	)
	nutrition := services.NewNutritionService(txm, repositories.NewNutritionWriteRepository(db, transaction.GetTxFromContext))
	feed := services.NewFeedService(feedWrite, repositories.NewFeedReadRepository(db))

	return &engine{
		db:        db,
		leveling:  leveling,
		nutrition: nutrition,
		feed:      feed,
		scans:     services.NewScanService(txm, scanWrite, leveling, nutrition, feed),
		weekly: services.NewWeeklySummaryService(
			repositories.NewUserReadRepository(db),
			repositories.NewScanReadRepository(db),
			feed,
			nil,
			0,
		),
		scanRepo: scanWrite,
	}
}

func (e *engine) createUser(t *testing.T, xp int64, level int, withProfile bool) uuid.UUID {
	userID := uuid.New()
	_, err := e.db.Exec(`INSERT INTO users (id, email) VALUES ($1, $2)`, userID, userID.String()+"@levelup.test")
	require.NoError(t, err)
	if withProfile {
		_, err = e.db.Exec(`INSERT INTO user_profiles (user_id, xp, level) VALUES ($1, $2, $3)`, userID, xp, level)
		require.NoError(t, err)
	}
	return userID
}

func (e *engine) count(t *testing.T, query string, args ...any) int {
	var n int
	require.NoError(t, e.db.Get(&n, query, args...))
	return n
}

func TestEngine(t *testing.T) {
	e := setupEngine(t)
	ctx := context.Background()

	t.Run("concurrent grants cross the threshold once", func(t *testing.T) {
		userID := e.createUser(t, 50, 1, true)

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := e.leveling.GrantXP(ctx, userID, "bonus", 60, models.XPSourceAI)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		var profile models.UserProfileDB
		require.NoError(t, e.db.Get(&profile, `SELECT user_id, xp, level, created_at, updated_at FROM user_profiles WHERE user_id = $1`, userID))
		assert.Equal(t, int64(170), profile.XP)
		assert.Equal(t, 2, profile.Level)
		assert.Equal(t, 2, e.count(t, `SELECT COUNT(*) FROM xp_logs WHERE user_id = $1`, userID))
		assert.Equal(t, 1, e.count(t, `SELECT COUNT(*) FROM user_feed WHERE user_id = $1 AND type = 'level_up'`, userID))
	})

	t.Run("rejected grants write nothing", func(t *testing.T) {
		userID := e.createUser(t, 95, 1, true)
		noProfile := e.createUser(t, 0, 1, false)

		_, err := e.leveling.GrantXP(ctx, userID, "x", -5, models.XPSourceScan)
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
		_, err = e.leveling.GrantXP(ctx, userID, "x", 0, models.XPSourceScan)
		assert.ErrorIs(t, err, services.ErrInvalidArgument)

		_, err = e.leveling.GrantXP(ctx, uuid.New(), "x", 10, models.XPSourceScan)
		assert.ErrorIs(t, err, services.ErrNotFound)
		_, err = e.leveling.GrantXP(ctx, noProfile, "x", 10, models.XPSourceScan)
		assert.ErrorIs(t, err, services.ErrNotFound)

		var profile models.UserProfileDB
		require.NoError(t, e.db.Get(&profile, `SELECT user_id, xp, level, created_at, updated_at FROM user_profiles WHERE user_id = $1`, userID))
		assert.Equal(t, int64(95), profile.XP)
		assert.Equal(t, 1, profile.Level)

		for _, id := range []uuid.UUID{userID, noProfile} {
			assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM xp_logs WHERE user_id = $1`, id))
			assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM user_feed WHERE user_id = $1`, id))
		}
		assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM user_profiles WHERE user_id = $1`, noProfile))
	})

	t.Run("nutrition merges in any order", func(t *testing.T) {
		userID := e.createUser(t, 0, 1, true)
		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

		_, err := e.nutrition.Accumulate(ctx, userID, day, models.Macros{Calories: 50, Protein: 2, Carbs: 5, Fat: 1})
		require.NoError(t, err)
		total, err := e.nutrition.Accumulate(ctx, userID, day, models.Macros{Calories: 100, Protein: 5, Carbs: 15, Fat: 3})
		require.NoError(t, err)

		assert.Equal(t, models.Macros{Calories: 150, Protein: 7, Carbs: 20, Fat: 4}, total.Macros)
	})

	t.Run("daily total beyond column precision is rejected", func(t *testing.T) {
		userID := e.createUser(t, 0, 1, true)
		day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

		_, err := e.nutrition.Accumulate(ctx, userID, day, models.Macros{Calories: 60_000_000})
		require.NoError(t, err)
		_, err = e.nutrition.Accumulate(ctx, userID, day, models.Macros{Calories: 60_000_000})
		assert.ErrorIs(t, err, services.ErrInvalidArgument)

		var calories float64
		require.NoError(t, e.db.Get(&calories, `SELECT total_calories FROM nutrition_log WHERE user_id = $1 AND date = $2`, userID, day))
		assert.Equal(t, 60_000_000.0, calories)
	})

	t.Run("failed scan rolls back every write", func(t *testing.T) {
		// A user without a profile fails at the XP grant after the scan and nutrition rows were written.
		userID := e.createUser(t, 0, 1, false)

		_, err := e.scans.Complete(ctx, userID, models.ScanKindFood, "", json.RawMessage(`{"food_name":"Apple","calories":95}`))
		assert.ErrorIs(t, err, services.ErrNotFound)

		assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM scans WHERE user_id = $1`, userID))
		assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM nutrition_log WHERE user_id = $1`, userID))
		assert.Equal(t, 0, e.count(t, `SELECT COUNT(*) FROM user_feed WHERE user_id = $1`, userID))
	})

	t.Run("weekly summary", func(t *testing.T) {
		active := e.createUser(t, 0, 1, true)
		idle := e.createUser(t, 0, 1, true)

		for _, kind := range []models.ScanKind{models.ScanKindBody, models.ScanKindFace, models.ScanKindFood} {
			_, err := e.scanRepo.Save(ctx, active, kind, "", json.RawMessage(`{}`))
			require.NoError(t, err)
		}

		report, err := e.weekly.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.Failed)

		entries, err := e.feed.List(ctx, active, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.FeedTypeWeeklySummary, entries[0].Type)

		var content models.WeeklySummaryContent
		require.NoError(t, json.Unmarshal(entries[0].Content, &content))
		assert.Equal(t, 3, content.Stats.TotalScans)
		assert.Equal(t, "Week in review: 3 total scans completed!", content.Message)

		idleEntries, err := e.feed.List(ctx, idle, 10)
		require.NoError(t, err)
		assert.Empty(t, idleEntries)
	})
}
