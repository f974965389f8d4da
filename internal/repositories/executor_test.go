package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

func txFromTestContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

func TestProfileWriteRepository_UsesTransactionFromContext(t *testing.T) {
	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer rawDB.Close()
	db := sqlx.NewDb(rawDB, "sqlmock")

	userID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_profiles")).
		WithArgs(userID, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"xp", "level"}).AddRow(int64(110), 1))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_profiles")).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"level"}).AddRow(2))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	repo := NewProfileWriteRepository(db, txFromTestContext)
	xp, level, err := repo.AddXP(ctx, userID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(110), xp)
	assert.Equal(t, 1, level)

	level, err = repo.AdvanceLevel(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_FallsBackToPool(t *testing.T) {
	rawDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer rawDB.Close()
	db := sqlx.NewDb(rawDB, "sqlmock")

	assert.Same(t, db, executor(context.Background(), db, nil))
	assert.Same(t, db, executor(context.Background(), db, txFromTestContext))
}
