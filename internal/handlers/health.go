package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-levelup/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the service health
// swagger:model HealthResponse
type HealthResponse struct {
	// default: healthy
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting whether the database is reachable.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "healthy", Timestamp: time.Now().UTC().Format(time.RFC3339)}
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			resp.Status = "unhealthy"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
