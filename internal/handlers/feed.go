package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=feed.go -destination=feed_mock.go -package=handlers

// FeedLister defines the interface that the service must implement.
type FeedLister interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.FeedEntryDB, error)
}

// FeedResponse represents a page of the activity feed
// swagger:model FeedResponse
type FeedResponse struct {
	Feed []models.FeedEntryDB `json:"feed"`
}

// NewFeedHandler returns an HTTP handler listing the caller's feed, newest first.
// @Summary List feed
// @Tags feed
// @Produce json
// @Param limit query int false "Maximum number of entries" default(20)
// @Success 200 {object} handlers.FeedResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /feed [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = n
		}

		entries, err := svc.List(r.Context(), userID, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if entries == nil {
			entries = []models.FeedEntryDB{}
		}

		writeJSON(w, http.StatusOK, FeedResponse{Feed: entries})
	}
}
