package models

import "github.com/google/uuid"

// Dashboard aggregates what a user sees on the home screen.
type Dashboard struct {
	Profile        *UserProfileDB  `json:"profile"`
	TodayNutrition *NutritionDayDB `json:"today_nutrition"`
	RecentScans    []ScanDB        `json:"recent_scans"`
	RecentXP       []XPLogEntryDB  `json:"recent_xp"`
	Feed           []FeedEntryDB   `json:"feed"`
}

// WeeklyReport summarises one weekly aggregation run.
type WeeklyReport struct {
	Skipped   bool `json:"skipped"`   // Another instance held the job lock
	Users     int  `json:"users"`     // Users examined
	Published int  `json:"published"` // weekly_summary entries written
	Failed    int  `json:"failed"`    // Users skipped because of an error
}

// XPAudit compares a profile's XP with its ledger.
type XPAudit struct {
	UserID     uuid.UUID `json:"user_id"`
	ProfileXP  int64     `json:"profile_xp"` // user_profiles.xp
	LedgerXP   int64     `json:"ledger_xp"`  // SUM(xp_logs.xp_amount)
	Drift      int64     `json:"drift"`      // ProfileXP - LedgerXP
	Consistent bool      `json:"consistent"`
}
