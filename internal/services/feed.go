package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/transaction"
)

//go:generate mockgen -source=feed.go -destination=feed_mock.go -package=services

// Feed listing bounds.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// FeedReader reads feed entries.
type FeedReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.FeedEntryDB, error) // Returns newest entries first
}

// FeedService appends to and reads the per-user activity feed.
type FeedService struct {
	writeRepo FeedWriter
	readRepo  FeedReader
}

// NewFeedService creates a new FeedService.
func NewFeedService(writeRepo FeedWriter, readRepo FeedReader) *FeedService {
	return &FeedService{writeRepo: writeRepo, readRepo: readRepo}
}

// Publish appends a feed entry. Content must serialize to JSON.
// When ctx carries a transaction the entry joins it.
func (s *FeedService) Publish(ctx context.Context, userID uuid.UUID, feedType models.FeedType, content any) (*models.FeedEntryDB, error) {
	if !feedType.Valid() {
		return nil, fmt.Errorf("%w: unknown feed type %q", ErrInvalidArgument, feedType)
	}

	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("%w: feed content: %w", ErrInvalidArgument, err)
	}

	entry, err := s.writeRepo.Save(ctx, userID, feedType, data)
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to publish feed entry", "userID", userID, "type", feedType, "error", err)
		return nil, err
	}

	transaction.AfterCommit(ctx, func() { metrics.RecordFeedEntry(string(feedType)) })
	return entry, nil
}

// List returns up to limit entries, newest first. Out-of-range limits fall back to the defaults.
func (s *FeedService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.FeedEntryDB, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	entries, err := s.readRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to list feed", "userID", userID, "error", err)
		return nil, err
	}
	return entries, nil
}
