package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

// PlanXP is the XP granted for every generated plan.
const PlanXP int64 = 20

const planAction = "ai_plan_generated"

var planTemplates = map[string]models.PlanSections{
	models.GoalWeightLoss: {
		Fitness: []string{
			"30 minutes cardio 4x/week",
			"Strength training 2x/week",
			"10,000 steps daily",
		},
		Nutrition: []string{
			"Caloric deficit of 500 calories/day",
			"High protein intake (1g per lb bodyweight)",
			"Limit processed foods",
		},
		Skincare: []string{
			"Drink 8 glasses of water daily",
			"Use gentle cleanser morning and night",
			"Apply moisturizer with SPF",
		},
	},
	models.GoalMuscleGain: {
		Fitness: []string{
			"Strength training 4x/week",
			"Progressive overload each week",
			"Focus on compound movements",
		},
		Nutrition: []string{
			"Caloric surplus of 300-500 calories/day",
			"High protein intake (1.2g per lb bodyweight)",
			"Pre and post workout nutrition",
		},
		Skincare: []string{
			"Stay hydrated",
			"Use gentle cleanser after workouts",
			"Apply moisturizer daily",
		},
	},
}

var planTips = []string{
	"Consistency is key to seeing results",
	"Track your progress weekly",
	"Listen to your body and rest when needed",
}

// PlanService builds wellness plans from fixed templates.
type PlanService struct {
	tx       Transactor
	leveling XPGranter
	feed     FeedPublisher
}

// NewPlanService creates a new PlanService.
func NewPlanService(tx Transactor, leveling XPGranter, feed FeedPublisher) *PlanService {
	return &PlanService{tx: tx, leveling: leveling, feed: feed}
}

// Generate builds a plan for goal, grants PlanXP and appends an ai_plan feed entry.
// Unknown goals get the weight loss template.
func (s *PlanService) Generate(ctx context.Context, userID uuid.UUID, goal string) (*models.PlanOutcome, error) {
	if goal == "" {
		goal = models.GoalWeightLoss
	}
	plan := buildPlan(goal)

	outcome := &models.PlanOutcome{Plan: plan}
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		grant, err := s.leveling.GrantXP(ctx, userID, planAction, PlanXP, models.XPSourceAI)
		if err != nil {
			return err
		}
		outcome.Grant = grant

		_, err = s.feed.Publish(ctx, userID, models.FeedTypeAIPlan, models.AIPlanContent{
			Message: fmt.Sprintf("New AI wellness plan generated for %s!", goal),
			Plan:    plan,
		})
		return err
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to generate plan", "userID", userID, "goal", goal, "error", err)
		return nil, err
	}

	return outcome, nil
}

func buildPlan(goal string) models.AIPlan {
	sections, ok := planTemplates[goal]
	if !ok {
		sections = planTemplates[models.GoalWeightLoss]
	}
	return models.AIPlan{
		Goal:       goal,
		Duration:   "4 weeks",
		Difficulty: "Intermediate",
		Plan:       sections,
		Tips:       planTips,
	}
}
