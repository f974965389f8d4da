package models

// XPEvent is published to the event stream after an XP grant commits.
type XPEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	UserID    string `json:"user_id"`    // User who received the XP
	Action    string `json:"action"`     // Ledger action label
	Source    string `json:"source"`     // Ledger source tag
	XPAmount  int64  `json:"xp_amount"`  // Granted amount
	TotalXP   int64  `json:"total_xp"`   // Cumulative XP after the grant
	Level     int    `json:"level"`      // Level after the grant
	LeveledUp bool   `json:"leveled_up"` // Whether the grant advanced the level
	Timestamp int64  `json:"timestamp"`  // Unix seconds
}
