package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/models"
)

//go:generate mockgen -source=scan.go -destination=scan_mock.go -package=services

// ScanXP is the XP granted for every completed scan.
const ScanXP int64 = 10

// ScanWriter stores scan results.
type ScanWriter interface {
	Save(ctx context.Context, userID uuid.UUID, kind models.ScanKind, imageURL string, result json.RawMessage) (*models.ScanDB, error)
}

// XPGranter grants XP through the leveling engine.
type XPGranter interface {
	GrantXP(ctx context.Context, userID uuid.UUID, action string, amount int64, source string) (*models.GrantResult, error)
}

// NutritionAccumulator merges food contributions into the daily total.
type NutritionAccumulator interface {
	Accumulate(ctx context.Context, userID uuid.UUID, date time.Time, m models.Macros) (*models.NutritionDayDB, error)
}

// ScanService records completed scans and rewards them.
type ScanService struct {
	tx        Transactor
	scanRepo  ScanWriter
	leveling  XPGranter
	nutrition NutritionAccumulator
	feed      FeedPublisher
}

// NewScanService creates a new ScanService.
func NewScanService(
	tx Transactor,
	scanRepo ScanWriter,
	leveling XPGranter,
	nutrition NutritionAccumulator,
	feed FeedPublisher,
) *ScanService {
	return &ScanService{
		tx:        tx,
		scanRepo:  scanRepo,
		leveling:  leveling,
		nutrition: nutrition,
		feed:      feed,
	}
}

// Complete stores the analysed scan, adds food macros to today's nutrition,
// grants ScanXP and appends a scan feed entry, all in one transaction.
func (s *ScanService) Complete(ctx context.Context, userID uuid.UUID, kind models.ScanKind, imageURL string, analysis json.RawMessage) (*models.ScanOutcome, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown scan kind %q", ErrInvalidArgument, kind)
	}

	message, macros, err := describeScan(kind, analysis)
	if err != nil {
		return nil, err
	}

	outcome := &models.ScanOutcome{}
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		scan, err := s.scanRepo.Save(ctx, userID, kind, imageURL, analysis)
		if err != nil {
			return err
		}
		outcome.Scan = scan

		if macros != nil {
			day, err := s.nutrition.Accumulate(ctx, userID, time.Time{}, *macros)
			if err != nil {
				return err
			}
			outcome.Nutrition = day
		}

		grant, err := s.leveling.GrantXP(ctx, userID, kind.Action(), ScanXP, models.XPSourceScan)
		if err != nil {
			return err
		}
		outcome.Grant = grant

		_, err = s.feed.Publish(ctx, userID, models.FeedTypeScan, models.ScanContent{
			Type:    kind.Action(),
			Message: message,
			Data:    analysis,
		})
		return err
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to complete scan", "userID", userID, "kind", kind, "error", err)
		return nil, err
	}

	logger.Log.Infow("scan completed", "userID", userID, "kind", kind, "scanID", outcome.Scan.ID)
	return outcome, nil
}

// describeScan validates the analysis for kind and builds the feed message.
// Food scans also return their macro contribution.
func describeScan(kind models.ScanKind, analysis json.RawMessage) (string, *models.Macros, error) {
	if len(analysis) == 0 || !json.Valid(analysis) {
		return "", nil, fmt.Errorf("%w: scan analysis must be a JSON object", ErrInvalidArgument)
	}

	switch kind {
	case models.ScanKindBody:
		var a models.BodyAnalysis
		if err := json.Unmarshal(analysis, &a); err != nil || a.BodyType == "" {
			return "", nil, fmt.Errorf("%w: body analysis requires body_type", ErrInvalidArgument)
		}
		return fmt.Sprintf("New body scan completed! Body type: %s", a.BodyType), nil, nil

	case models.ScanKindFace:
		var a models.FaceAnalysis
		if err := json.Unmarshal(analysis, &a); err != nil || a.SkinType == "" {
			return "", nil, fmt.Errorf("%w: face analysis requires skin_type", ErrInvalidArgument)
		}
		return fmt.Sprintf("Face scan completed! Skin type: %s", a.SkinType), nil, nil

	default:
		var a models.FoodAnalysis
		if err := json.Unmarshal(analysis, &a); err != nil || a.FoodName == "" {
			return "", nil, fmt.Errorf("%w: food analysis requires food_name", ErrInvalidArgument)
		}
		m := a.Macros()
		if err := validateMacros(m); err != nil {
			return "", nil, err
		}
		calories := strconv.FormatFloat(a.Calories, 'f', -1, 64)
		return fmt.Sprintf("Food scanned: %s (%s cal)", a.FoodName, calories), &m, nil
	}
}
