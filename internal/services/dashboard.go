package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

const (
	dashboardScanLimit = 5
	dashboardFeedLimit = 10
	dashboardXPLimit   = 5
)

// ProfileReader reads user progression.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
}

// NutritionReader reads daily nutrition totals.
type NutritionReader interface {
	GetByUserIDAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.NutritionDayDB, error)
}

// ScanReader reads stored scans.
type ScanReader interface {
	ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanDB, error)
}

// XPLedgerReader reads the xp_logs ledger.
type XPLedgerReader interface {
	SumByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.XPLogEntryDB, error)
}

// DashboardService assembles the home screen for a user.
type DashboardService struct {
	profileRepo   ProfileReader
	nutritionRepo NutritionReader
	scanRepo      ScanReader
	feedRepo      FeedReader
	xpLogRepo     XPLedgerReader
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	profileRepo ProfileReader,
	nutritionRepo NutritionReader,
	scanRepo ScanReader,
	feedRepo FeedReader,
	xpLogRepo XPLedgerReader,
) *DashboardService {
	return &DashboardService{
		profileRepo:   profileRepo,
		nutritionRepo: nutritionRepo,
		scanRepo:      scanRepo,
		feedRepo:      feedRepo,
		xpLogRepo:     xpLogRepo,
		now:           time.Now,
	}
}

// Get returns the profile, today's nutrition (nil when nothing was logged),
// the latest scans, XP grants and feed entries.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(userID, "profile", err)
	}

	today, err := s.nutritionRepo.GetByUserIDAndDate(ctx, userID, truncateToDay(s.now()))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, s.fail(userID, "nutrition", err)
	}

	scans, err := s.scanRepo.ListRecentByUserID(ctx, userID, dashboardScanLimit)
	if err != nil {
		return nil, s.fail(userID, "scans", err)
	}

	feed, err := s.feedRepo.ListByUserID(ctx, userID, dashboardFeedLimit)
	if err != nil {
		return nil, s.fail(userID, "feed", err)
	}

	xp, err := s.xpLogRepo.ListByUserID(ctx, userID, dashboardXPLimit)
	if err != nil {
		return nil, s.fail(userID, "xp_logs", err)
	}

	return &models.Dashboard{
		Profile:        profile,
		TodayNutrition: today,
		RecentScans:    scans,
		RecentXP:       xp,
		Feed:           feed,
	}, nil
}

// AuditXP compares the profile's XP with the sum of its ledger entries.
// Drift is reported, never repaired.
func (s *DashboardService) AuditXP(ctx context.Context, userID uuid.UUID) (*models.XPAudit, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(userID, "profile", err)
	}

	ledgerXP, err := s.xpLogRepo.SumByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(userID, "xp_logs", err)
	}

	audit := &models.XPAudit{
		UserID:     userID,
		ProfileXP:  profile.XP,
		LedgerXP:   ledgerXP,
		Drift:      profile.XP - ledgerXP,
		Consistent: profile.XP == ledgerXP,
	}
	if !audit.Consistent {
		logger.Log.Warnw("xp ledger drift", "userID", userID, "profileXP", profile.XP, "ledgerXP", ledgerXP)
	}
	metrics.RecordXPAudit(audit.Consistent)

	return audit, nil
}

func (s *DashboardService) fail(userID uuid.UUID, part string, err error) error {
	err = classify(err)
	logger.Log.Errorw("failed to load dashboard", "userID", userID, "part", part, "error", err)
	return err
}
