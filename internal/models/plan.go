package models

// Plan goals
const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
)

// PlanSections groups recommendations by area.
type PlanSections struct {
	Fitness   []string `json:"fitness"`
	Nutrition []string `json:"nutrition"`
	Skincare  []string `json:"skincare"`
}

// AIPlan is a generated wellness plan.
type AIPlan struct {
	Goal       string       `json:"goal"`
	Duration   string       `json:"duration"`
	Difficulty string       `json:"difficulty"`
	Plan       PlanSections `json:"plan"`
	Tips       []string     `json:"tips"`
}

// PlanOutcome is returned after a plan is generated.
type PlanOutcome struct {
	Plan  AIPlan       `json:"plan"`
	Grant *GrantResult `json:"grant"`
}
