package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/transaction"
)

//go:generate mockgen -source=nutrition.go -destination=nutrition_mock.go -package=services

// NutritionWriter merges nutrition contributions into the daily total.
type NutritionWriter interface {
	SaveAdd(ctx context.Context, userID uuid.UUID, date time.Time, m models.Macros) (*models.NutritionDayDB, error) // Creates or increments the (user, date) row
}

// NutritionService accumulates daily calorie and macro totals.
type NutritionService struct {
	tx        Transactor
	writeRepo NutritionWriter
	now       func() time.Time
}

// NewNutritionService creates a new NutritionService.
func NewNutritionService(tx Transactor, writeRepo NutritionWriter) *NutritionService {
	return &NutritionService{
		tx:        tx,
		writeRepo: writeRepo,
		now:       time.Now,
	}
}

// Accumulate adds m to the user's total for date. A zero date means the current UTC day.
func (s *NutritionService) Accumulate(ctx context.Context, userID uuid.UUID, date time.Time, m models.Macros) (*models.NutritionDayDB, error) {
	if err := validateMacros(m); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = s.now()
	}
	date = truncateToDay(date)

	var day *models.NutritionDayDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		day, err = s.writeRepo.SaveAdd(ctx, userID, date, m)
		if err != nil {
			return err
		}
		transaction.AfterCommit(ctx, metrics.RecordNutrition)
		return nil
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to accumulate nutrition", "userID", userID, "date", date.Format(time.DateOnly), "error", err)
		return nil, err
	}

	return day, nil
}

// Upper bounds of a single event, matching the nutrition_log column precision.
const (
	maxCalories = 1e8 // NUMERIC(10,2)
	maxGrams    = 1e6 // NUMERIC(8,2)
)

func validateMacros(m models.Macros) error {
	values := []struct {
		name  string
		value float64
		max   float64
	}{
		{"calories", m.Calories, maxCalories},
		{"protein", m.Protein, maxGrams},
		{"carbs", m.Carbs, maxGrams},
		{"fat", m.Fat, maxGrams},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidArgument, v.name, v.value)
		}
		if v.value >= v.max {
			return fmt.Errorf("%w: %s must be below %v, got %v", ErrInvalidArgument, v.name, v.max, v.value)
		}
	}
	return nil
}

// truncateToDay returns midnight UTC of t's UTC calendar day.
func truncateToDay(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
