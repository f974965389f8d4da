package models

import (
	"time"

	"github.com/google/uuid"
)

// XP sources
const (
	XPSourceScan = "scan"
	XPSourceAI   = "ai"
)

// XPLogEntryDB represents an immutable xp_logs row
type XPLogEntryDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Unique entry identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // User who received the XP
	Action    string    `json:"action" db:"action"`         // Category label, e.g. body_scan
	XPAmount  int64     `json:"xp_amount" db:"xp_amount"`   // Granted amount, always positive
	Source    string    `json:"source" db:"source"`         // Origin tag, e.g. scan or ai
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Grant timestamp
}
