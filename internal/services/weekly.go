package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=weekly.go -destination=weekly_mock.go -package=services

const (
	weeklySummaryJob    = "weekly_summary"
	weeklySummaryWindow = 7 * 24 * time.Hour
)

// UserReader lists registered users.
type UserReader interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ScanCounter counts a user's scans per kind.
type ScanCounter interface {
	CountByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) (*models.ScanCounts, error)
}

// FeedPublisher appends validated feed entries.
type FeedPublisher interface {
	Publish(ctx context.Context, userID uuid.UUID, feedType models.FeedType, content any) (*models.FeedEntryDB, error)
}

// JobLocker provides a cross-instance mutual exclusion for scheduled jobs.
type JobLocker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (token string, ok bool, err error) // ok is false when another holder owns the lock
	Release(ctx context.Context, name, token string) error                                           // Releases only if token still owns the lock
}

// WeeklySummaryService writes a weekly activity summary into every active user's feed.
type WeeklySummaryService struct {
	userRepo UserReader
	scanRepo ScanCounter
	feed     FeedPublisher
	locker   JobLocker
	lockTTL  time.Duration
	now      func() time.Time
}

// NewWeeklySummaryService creates a new WeeklySummaryService. locker may be nil
// when a single instance runs the job.
func NewWeeklySummaryService(
	userRepo UserReader,
	scanRepo ScanCounter,
	feed FeedPublisher,
	locker JobLocker,
	lockTTL time.Duration,
) *WeeklySummaryService {
	return &WeeklySummaryService{
		userRepo: userRepo,
		scanRepo: scanRepo,
		feed:     feed,
		locker:   locker,
		lockTTL:  lockTTL,
		now:      time.Now,
	}
}

// Run counts every user's scans over the trailing seven days and publishes a
// weekly_summary entry for users with at least one scan. Per-user failures are
// logged and skipped; only failing to list users aborts the run.
func (s *WeeklySummaryService) Run(ctx context.Context) (*models.WeeklyReport, error) {
	start := time.Now()

	now := s.now()
	release := func() {}

	if s.locker != nil {
		lockName := weeklyLockName(now)
		token, ok, err := s.locker.Acquire(ctx, lockName, s.lockTTL)
		if err != nil {
			metrics.RecordWeeklyRun("failed", time.Since(start))
			logger.Log.Errorw("failed to acquire weekly summary lock", "lock", lockName, "error", err)
			return nil, fmt.Errorf("%w: acquire job lock: %w", ErrStorage, err)
		}
		if !ok {
			metrics.RecordWeeklyRun("skipped", time.Since(start))
			logger.Log.Infow("weekly summary already ran or is running elsewhere, skipping", "lock", lockName)
			return &models.WeeklyReport{Skipped: true}, nil
		}

		// Only an aborted run releases the lock, otherwise it expires by TTL.
		release = func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), lockName, token); err != nil {
				logger.Log.Errorw("failed to release weekly summary lock", "lock", lockName, "error", err)
			}
		}
	}

	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		release()
		err = classify(err)
		metrics.RecordWeeklyRun("failed", time.Since(start))
		logger.Log.Errorw("failed to list users for weekly summary", "error", err)
		return nil, err
	}

	since := now.Add(-weeklySummaryWindow)
	report := &models.WeeklyReport{Users: len(userIDs)}

	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			metrics.RecordWeeklyRun("failed", time.Since(start))
			return report, classify(err)
		}

		published, err := s.summarizeUser(ctx, userID, since)
		if err != nil {
			report.Failed++
			logger.Log.Errorw("failed to summarize user week", "userID", userID, "error", err)
			continue
		}
		if published {
			report.Published++
		}
	}

	metrics.RecordWeeklyRun("completed", time.Since(start))
	logger.Log.Infow("weekly summary completed",
		"users", report.Users,
		"published", report.Published,
		"failed", report.Failed,
	)
	return report, nil
}

// weeklyLockName keys the job lock by ISO week.
func weeklyLockName(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%s:%d-W%02d", weeklySummaryJob, year, week)
}

func (s *WeeklySummaryService) summarizeUser(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error) {
	counts, err := s.scanRepo.CountByUserIDSince(ctx, userID, since)
	if err != nil {
		return false, classify(err)
	}

	counts.TotalScans = counts.BodyScans + counts.FaceScans + counts.FoodScans
	if counts.TotalScans == 0 {
		return false, nil
	}

	content := models.WeeklySummaryContent{
		Message: fmt.Sprintf("Week in review: %d total scans completed!", counts.TotalScans),
		Stats:   *counts,
	}
	if _, err := s.feed.Publish(ctx, userID, models.FeedTypeWeeklySummary, content); err != nil {
		return false, err
	}
	return true, nil
}
