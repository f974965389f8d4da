package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/transaction"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=leveling.go -destination=leveling_mock.go -package=services

// publishTimeout bounds one Kafka publish after commit.
const publishTimeout = 3 * time.Second

// xpPerLevel is the cumulative XP needed per level: level N ends at N*xpPerLevel.
const xpPerLevel = 100

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error // Commits when fn returns nil, rolls back otherwise
}

// ProfileWriter mutates user progression.
type ProfileWriter interface {
	AddXP(ctx context.Context, userID uuid.UUID, amount int64) (xp int64, level int, err error) // Increments XP and returns the post-increment row
	AdvanceLevel(ctx context.Context, userID uuid.UUID, fromLevel int) (int, error)              // Moves level from fromLevel to fromLevel+1
}

// XPLogWriter appends XP ledger entries.
type XPLogWriter interface {
	Save(ctx context.Context, userID uuid.UUID, action string, amount int64, source string) (*models.XPLogEntryDB, error)
}

// FeedWriter appends feed entries.
type FeedWriter interface {
	Save(ctx context.Context, userID uuid.UUID, feedType models.FeedType, content json.RawMessage) (*models.FeedEntryDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LevelingService grants XP and advances levels.
type LevelingService struct {
	tx          Transactor
	profileRepo ProfileWriter
	xpLogRepo   XPLogWriter
	feedRepo    FeedWriter
	kafkaWriter KafkaWriter
}

// NewLevelingService creates a new LevelingService. kafkaWriter may be nil.
func NewLevelingService(
	tx Transactor,
	profileRepo ProfileWriter,
	xpLogRepo XPLogWriter,
	feedRepo FeedWriter,
	kafkaWriter KafkaWriter,
) *LevelingService {
	return &LevelingService{
		tx:          tx,
		profileRepo: profileRepo,
		xpLogRepo:   xpLogRepo,
		feedRepo:    feedRepo,
		kafkaWriter: kafkaWriter,
	}
}

// GrantXP adds amount to the user's XP, records the ledger entry and, when the
// post-increment total reaches level*100, advances the level by exactly one and
// appends a level_up feed entry. All writes share one transaction.
func (s *LevelingService) GrantXP(ctx context.Context, userID uuid.UUID, action string, amount int64, source string) (*models.GrantResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: xp amount must be positive, got %d", ErrInvalidArgument, amount)
	}

	result := &models.GrantResult{XPGained: amount}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		xp, level, err := s.profileRepo.AddXP(ctx, userID, amount)
		if err != nil {
			return err
		}

		if _, err := s.xpLogRepo.Save(ctx, userID, action, amount, source); err != nil {
			return err
		}

		result.TotalXP = xp
		result.Level = level
		result.LeveledUp = false

		if xp < int64(level)*xpPerLevel {
			return nil
		}

		newLevel, err := s.profileRepo.AdvanceLevel(ctx, userID, level)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: level changed underneath the grant", ErrConflict)
			}
			return err
		}

		content, err := json.Marshal(models.LevelUpContent{
			Message:  fmt.Sprintf("Congratulations! You reached level %d!", newLevel),
			NewLevel: newLevel,
			XPGained: amount,
		})
		if err != nil {
			return err
		}
		if _, err := s.feedRepo.Save(ctx, userID, models.FeedTypeLevelUp, content); err != nil {
			return err
		}

		result.Level = newLevel
		result.LeveledUp = true
		return nil
	})
	if err != nil {
		err = classify(err)
		metrics.RecordGrantFailure(failureReason(err))
		logger.Log.Errorw("failed to grant xp", "userID", userID, "action", action, "amount", amount, "source", source, "error", err)
		return nil, err
	}

	event := models.XPEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Action:    action,
		Source:    source,
		XPAmount:  amount,
		TotalXP:   result.TotalXP,
		Level:     result.Level,
		LeveledUp: result.LeveledUp,
		Timestamp: time.Now().Unix(),
	}

	// A caller's enclosing transaction may still roll back.
	transaction.AfterCommit(ctx, func() {
		metrics.RecordGrant(source, amount, event.LeveledUp)
		if event.LeveledUp {
			logger.Log.Infow("user leveled up", "userID", userID, "level", event.Level, "totalXP", event.TotalXP)
		}
		s.publishEvent(ctx, event)
	})

	return result, nil
}

// publishEvent publishes a committed grant to Kafka. Failures are logged only.
func (s *LevelingService) publishEvent(ctx context.Context, event models.XPEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal xp event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	// The grant is committed; the caller's deadline belongs to the transaction.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish xp event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Debugw("XP event published to Kafka", "event_id", event.EventID, "userID", event.UserID)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "storage"
	}
}
