package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_Publish(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ctrl := gomock.NewController(t)

	writer := NewMockFeedWriter(ctrl)
	content := models.WeeklySummaryContent{
		Message: "Week in review: 3 total scans completed!",
		Stats:   models.ScanCounts{BodyScans: 2, FoodScans: 1, TotalScans: 3},
	}
	want, err := json.Marshal(content)
	require.NoError(t, err)

	writer.EXPECT().Save(ctx, userID, models.FeedTypeWeeklySummary, json.RawMessage(want)).
		Return(&models.FeedEntryDB{UserID: userID, Type: models.FeedTypeWeeklySummary, Content: want}, nil)

	entry, err := NewFeedService(writer, nil).Publish(ctx, userID, models.FeedTypeWeeklySummary, content)

	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(entry.Content))
}

func TestFeedService_Publish_InvalidInput(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	svc := NewFeedService(NewMockFeedWriter(ctrl), nil)

	_, err := svc.Publish(ctx, uuid.New(), models.FeedType("achievement"), map[string]string{"message": "hi"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Publish(ctx, uuid.New(), models.FeedTypeScan, map[string]any{"bad": make(chan int)})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFeedService_Publish_UnknownUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	writer := NewMockFeedWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewFeedService(writer, nil).Publish(ctx, uuid.New(), models.FeedTypeScan, models.ScanContent{Type: "body_scan"})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestFeedService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: DefaultFeedLimit},
		{name: "negative", limit: -3, wantLimit: DefaultFeedLimit},
		{name: "explicit", limit: 10, wantLimit: 10},
		{name: "capped", limit: 1000, wantLimit: MaxFeedLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := NewMockFeedReader(ctrl)
			reader.EXPECT().ListByUserID(ctx, userID, tt.wantLimit).Return([]models.FeedEntryDB{{UserID: userID}}, nil)

			entries, err := NewFeedService(nil, reader).List(ctx, userID, tt.limit)

			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}
