package models

import (
	"time"

	"github.com/google/uuid"
)

// Macros is a calorie and macronutrient contribution or total.
type Macros struct {
	Calories float64 `json:"calories" db:"total_calories"`
	Protein  float64 `json:"protein" db:"protein"`
	Carbs    float64 `json:"carbs" db:"carbs"`
	Fat      float64 `json:"fat" db:"fat"`
}

// NutritionDayDB represents the nutrition_log row of one user for one calendar day
type NutritionDayDB struct {
	ID     uuid.UUID `json:"id" db:"id"`           // Row identifier
	UserID uuid.UUID `json:"user_id" db:"user_id"` // Owner
	Date   time.Time `json:"date" db:"date"`       // Calendar day, no time component
	Macros
}
