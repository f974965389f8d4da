package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=scan.go -destination=scan_mock.go -package=handlers

// ScanCompleter defines the interface that the service must implement.
type ScanCompleter interface {
	Complete(ctx context.Context, userID uuid.UUID, kind models.ScanKind, imageURL string, analysis json.RawMessage) (*models.ScanOutcome, error)
}

// ScanRequest represents the JSON body of a completed scan
// swagger:model ScanRequest
type ScanRequest struct {
	// Location of the uploaded image
	// default: https://cdn.levelup.app/scans/1.jpg
	ImageURL string `json:"image_url"`

	// Analyzer output, shape depends on the scan kind
	// required: true
	Analysis json.RawMessage `json:"analysis" swaggertype:"object"`
}

// ScanResponse represents a successful scan response
// swagger:model ScanResponse
type ScanResponse struct {
	Success   bool                   `json:"success"`
	Scan      *models.ScanDB         `json:"scan"`
	XPGained  int64                  `json:"xpGained"`
	LeveledUp bool                   `json:"leveledUp"`
	Level     int                    `json:"level"`
	Nutrition *models.NutritionDayDB `json:"nutrition,omitempty"`
}

// NewScanHandler returns an HTTP handler recording a completed scan.
// @Summary Complete a scan
// @Description Stores the analysed body, face or food scan, adds food macros to today's nutrition and grants XP.
// @Tags scan
// @Accept json
// @Produce json
// @Param kind path string true "Scan kind" Enums(body, face, food)
// @Param request body handlers.ScanRequest true "Scan Request"
// @Success 200 {object} handlers.ScanResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid scan kind or analysis"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 503 {object} handlers.ErrorResponse "Concurrent update, please retry"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /scan/{kind} [post]
// @Security BearerAuth
func NewScanHandler(svc ScanCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		kind := models.ScanKind(chi.URLParam(r, "kind"))
		if !kind.Valid() {
			writeError(w, http.StatusBadRequest, "Unknown scan kind")
			return
		}

		var req ScanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode scan request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		out, err := svc.Complete(r.Context(), userID, kind, req.ImageURL, req.Analysis)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ScanResponse{
			Success:   true,
			Scan:      out.Scan,
			XPGained:  out.Grant.XPGained,
			LeveledUp: out.Grant.LeveledUp,
			Level:     out.Grant.Level,
			Nutrition: out.Nutrition,
		})
	}
}
