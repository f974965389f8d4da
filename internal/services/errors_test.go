package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: ErrNotFound},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: ErrNotFound},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: ErrConflict},
		{name: "deadlock", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}), want: ErrConflict},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: ErrConflict},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, want: ErrInvalidArgument},
		{name: "other pg error", err: &pgconn.PgError{Code: "23514"}, want: ErrStorage},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrStorage},
		{name: "connection", err: sql.ErrConnDone, want: ErrStorage},
		{name: "already classified", err: fmt.Errorf("%w: amount", ErrInvalidArgument), want: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "cause must stay in the chain")
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestClassify_OnlyOneCategory(t *testing.T) {
	err := classify(sql.ErrNoRows)
	assert.False(t, errors.Is(err, ErrStorage))
	assert.False(t, errors.Is(err, ErrConflict))
}
