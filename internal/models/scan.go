package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanKind enumerates supported scan inputs.
type ScanKind string

// Supported scan kinds
const (
	ScanKindBody ScanKind = "body"
	ScanKindFace ScanKind = "face"
	ScanKindFood ScanKind = "food"
)

// Valid reports whether k is a supported scan kind.
func (k ScanKind) Valid() bool {
	switch k {
	case ScanKindBody, ScanKindFace, ScanKindFood:
		return true
	}
	return false
}

// Action returns the XP ledger action label for the scan kind.
func (k ScanKind) Action() string {
	return string(k) + "_scan"
}

// ScanDB represents a scans row
type ScanDB struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Kind      ScanKind        `json:"kind" db:"kind"`
	ImageURL  string          `json:"image_url" db:"image_url"`
	Result    json.RawMessage `json:"result" db:"result"` // Analysis produced by the external analyzer
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// BodyAnalysis is the analyzer output for a body scan.
type BodyAnalysis struct {
	BodyType      string  `json:"body_type"`
	FatPercent    float64 `json:"fat_percent"`
	MusclePercent float64 `json:"muscle_percent"`
}

// FaceAnalysis is the analyzer output for a face scan.
type FaceAnalysis struct {
	SkinType   string   `json:"skin_type"`
	SkinIssues []string `json:"skin_issues"`
}

// FoodAnalysis is the analyzer output for a food scan.
type FoodAnalysis struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Macros returns the nutrition contribution of the analysed food.
func (a FoodAnalysis) Macros() Macros {
	return Macros{Calories: a.Calories, Protein: a.Protein, Carbs: a.Carbs, Fat: a.Fat}
}

// ScanCounts holds per-kind scan counts over a window.
type ScanCounts struct {
	BodyScans  int `json:"bodyScans" db:"body_scans"`
	FaceScans  int `json:"faceScans" db:"face_scans"`
	FoodScans  int `json:"foodScans" db:"food_scans"`
	TotalScans int `json:"totalScans" db:"-"`
}

// ScanOutcome is returned after a scan completes.
type ScanOutcome struct {
	Scan      *ScanDB         `json:"scan"`
	Grant     *GrantResult    `json:"grant"`
	Nutrition *NutritionDayDB `json:"nutrition,omitempty"`
}
