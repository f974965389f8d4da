package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// DashboardGetter defines the interface that the service must implement.
type DashboardGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error)
}

// NewDashboardHandler returns an HTTP handler for the caller's dashboard.
// @Summary Get dashboard
// @Description Profile, today's nutrition, the 5 latest scans and XP grants, and the 10 latest feed entries.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		d, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, d)
	}
}
