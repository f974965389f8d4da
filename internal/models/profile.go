package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileDB represents a user_profiles row in the database
type UserProfileDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner, created by the identity service
	XP        int64     `json:"xp" db:"xp"`                 // Cumulative experience points, never decreases
	Level     int       `json:"level" db:"level"`           // Current level, starts at 1, never decreases
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// GrantResult is the outcome of a single XP grant.
type GrantResult struct {
	LeveledUp bool  `json:"leveled_up"` // Whether this grant advanced the level
	Level     int   `json:"level"`      // Level after the grant
	TotalXP   int64 `json:"total_xp"`   // Cumulative XP after the grant
	XPGained  int64 `json:"xp_gained"`  // Amount granted
}
