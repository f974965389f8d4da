package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
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
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, migrations.Up(db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, db *sqlx.DB, xp int64, level int) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (id, email) VALUES ($1, $2)`, userID, userID.String()+"@levelup.test")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO user_profiles (user_id, xp, level) VALUES ($1, $2, $3)`, userID, xp, level)
	require.NoError(t, err)
	return userID
}

func getProfile(t *testing.T, db *sqlx.DB, userID uuid.UUID) (int64, int) {
	var row struct {
		XP    int64 `db:"xp"`
		Level int   `db:"level"`
	}
	require.NoError(t, db.Get(&row, `SELECT xp, level FROM user_profiles WHERE user_id = $1`, userID))
	return row.XP, row.Level
}

func countRows(t *testing.T, db *sqlx.DB, table string, userID uuid.UUID) int {
	var n int
	require.NoError(t, db.Get(&n, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1`, table), userID))
	return n
}
