package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ListIDs returns the identifiers of all registered users.
func (r *UserReadRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	const query = `
		SELECT id
		FROM users
		ORDER BY created_at, id
	`

	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids, query)
	logQuery(query, nil, len(ids), err)

	return ids, err
}
