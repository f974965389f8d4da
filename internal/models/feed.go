package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FeedType enumerates the kinds of feed entries.
type FeedType string

// Supported feed entry types
const (
	FeedTypeScan          FeedType = "scan"
	FeedTypeLevelUp       FeedType = "level_up"
	FeedTypeAIPlan        FeedType = "ai_plan"
	FeedTypeWeeklySummary FeedType = "weekly_summary"
)

// Valid reports whether t is one of the supported feed types.
func (t FeedType) Valid() bool {
	switch t {
	case FeedTypeScan, FeedTypeLevelUp, FeedTypeAIPlan, FeedTypeWeeklySummary:
		return true
	}
	return false
}

// FeedEntryDB represents an immutable user_feed row
type FeedEntryDB struct {
	ID        uuid.UUID       `json:"id" db:"id"`                 // Entry identifier
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Owner
	Type      FeedType        `json:"type" db:"type"`             // Entry type
	Content   json.RawMessage `json:"content" db:"content"`       // Payload, shape depends on Type
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Display order key, newest first
}

// LevelUpContent is the payload of a level_up feed entry.
type LevelUpContent struct {
	Message  string `json:"message"`
	NewLevel int    `json:"newLevel"`
	XPGained int64  `json:"xpGained"`
}

// ScanContent is the payload of a scan feed entry.
type ScanContent struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AIPlanContent is the payload of an ai_plan feed entry.
type AIPlanContent struct {
	Message string `json:"message"`
	Plan    AIPlan `json:"plan"`
}

// WeeklySummaryContent is the payload of a weekly_summary feed entry.
type WeeklySummaryContent struct {
	Message string     `json:"message"`
	Stats   ScanCounts `json:"stats"`
}
