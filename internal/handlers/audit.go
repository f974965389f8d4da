package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=audit.go -destination=audit_mock.go -package=handlers

// XPAuditor compares a user's profile XP with the XP ledger.
type XPAuditor interface {
	AuditXP(ctx context.Context, userID uuid.UUID) (*models.XPAudit, error)
}

// NewXPAuditHandler returns an HTTP handler that reconciles the caller's XP ledger.
// @Summary Audit XP
// @Description Compares the profile XP with the sum of the caller's ledger entries.
// @Tags xp
// @Produce json
// @Success 200 {object} models.XPAudit
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /xp/audit [get]
// @Security BearerAuth
func NewXPAuditHandler(svc XPAuditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		audit, err := svc.AuditXP(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, audit)
	}
}
