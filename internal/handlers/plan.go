package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=plan.go -destination=plan_mock.go -package=handlers

// PlanGenerator defines the interface that the service must implement.
type PlanGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, goal string) (*models.PlanOutcome, error)
}

// PlanRequest represents the JSON body for generating a plan
// swagger:model PlanRequest
type PlanRequest struct {
	// Wellness goal
	// default: weight_loss
	Goal string `json:"goal"`
}

// PlanResponse represents a generated plan
// swagger:model PlanResponse
type PlanResponse struct {
	Success   bool          `json:"success"`
	Plan      models.AIPlan `json:"plan"`
	XPGained  int64         `json:"xpGained"`
	LeveledUp bool          `json:"leveledUp"`
	Level     int           `json:"level"`
}

// NewPlanHandler returns an HTTP handler generating a wellness plan.
// @Summary Generate a wellness plan
// @Description Builds a plan for the goal (weight_loss or muscle_gain) and grants XP.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body handlers.PlanRequest false "Plan Request"
// @Success 200 {object} handlers.PlanResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /ai/generate-plan [post]
// @Security BearerAuth
func NewPlanHandler(svc PlanGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Log.Warnw("failed to decode plan request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		out, err := svc.Generate(r.Context(), userID, req.Goal)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PlanResponse{
			Success:   true,
			Plan:      out.Plan,
			XPGained:  out.Grant.XPGained,
			LeveledUp: out.Grant.LeveledUp,
			Level:     out.Grant.Level,
		})
	}
}
