package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

// NutritionWriteRepository merges food contributions into nutrition_log
type NutritionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNutritionWriteRepository(db *sqlx.DB, txGetter TxGetter) *NutritionWriteRepository {
	return &NutritionWriteRepository{db: db, txGetter: txGetter}
}

// SaveAdd performs an UPSERT: creates the day row if not exists, otherwise adds
// the values onto the existing totals. Returns the totals after the merge.
func (r *NutritionWriteRepository) SaveAdd(ctx context.Context, userID uuid.UUID, date time.Time, m models.Macros) (*models.NutritionDayDB, error) {
	const query = `
		INSERT INTO nutrition_log (id, user_id, date, total_calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			total_calories = nutrition_log.total_calories + EXCLUDED.total_calories,
			protein = nutrition_log.protein + EXCLUDED.protein,
			carbs = nutrition_log.carbs + EXCLUDED.carbs,
			fat = nutrition_log.fat + EXCLUDED.fat
		RETURNING id, user_id, date, total_calories, protein, carbs, fat
	`

	var day models.NutritionDayDB
	args := []any{uuid.New(), userID, date, m.Calories, m.Protein, m.Carbs, m.Fat}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &day, query, args...)
	logQuery(query, args, day.Macros, err)

	if err != nil {
		return nil, err
	}
	return &day, nil
}

// NutritionReadRepository reads nutrition_log rows
type NutritionReadRepository struct {
	db *sqlx.DB
}

func NewNutritionReadRepository(db *sqlx.DB) *NutritionReadRepository {
	return &NutritionReadRepository{db: db}
}

// GetByUserIDAndDate returns the totals of one day or sql.ErrNoRows.
func (r *NutritionReadRepository) GetByUserIDAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.NutritionDayDB, error) {
	const query = `
		SELECT id, user_id, date, total_calories, protein, carbs, fat
		FROM nutrition_log
		WHERE user_id = $1 AND date = $2
	`

	var day models.NutritionDayDB
	err := r.db.GetContext(ctx, &day, query, userID, date)
	logQuery(query, []any{userID, date}, day.Macros, err)

	if err != nil {
		return nil, err
	}
	return &day, nil
}
