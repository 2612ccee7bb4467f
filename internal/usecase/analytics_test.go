package usecase

import (
	"context"
	"testing"

	"github.com/patriotcart/savings-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAnalyticsTrack(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	publisher := &fakePublisher{}
	uc := NewAnalyticsUsecase(repo, publisher)

	productID := primitive.NewObjectID()
	err := uc.Track(context.Background(), TrackEventParams{
		UserID:    "user-1",
		EventType: models.EventStoreClick,
		ProductID: productID.Hex(),
		Metadata:  map[string]any{"store": "Amazon"},
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	event := repo.inserted[0]
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, models.EventStoreClick, event.EventType)
	assert.Equal(t, productID, event.ProductID)
	assert.Equal(t, "Amazon", event.Metadata["store"])
	assert.Equal(t, "10.0.0.1", event.IPAddress)
	assert.Equal(t, "test-agent", event.UserAgent)

	require.Len(t, publisher.published, 1)
	assert.Same(t, event, publisher.published[0])
}

func TestAnalyticsTrackInvalidEventType(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewAnalyticsUsecase(repo, &fakePublisher{})

	err := uc.Track(context.Background(), TrackEventParams{
		UserID:    "user-1",
		EventType: "page_view",
	})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Empty(t, repo.inserted)
}

func TestAnalyticsTrackMalformedProductID(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewAnalyticsUsecase(repo, &fakePublisher{})

	err := uc.Track(context.Background(), TrackEventParams{
		UserID:    "user-1",
		EventType: models.EventListCreate,
		ProductID: "garbage",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.True(t, repo.inserted[0].ProductID.IsZero())
}

func TestAnalyticsSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: 7,
		counts: []models.EventTypeCount{
			{EventType: models.EventStoreClick, Count: 5},
			{EventType: models.EventSavingsAdd, Count: 2},
		},
		recent: []models.AnalyticsEvent{
			{EventType: models.EventStoreClick, UserID: "user-1"},
		},
	}
	uc := NewAnalyticsUsecase(repo, &fakePublisher{})

	summary, err := uc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.TotalEvents)
	assert.Len(t, summary.EventsByType, 2)
	assert.Len(t, summary.RecentEvents, 1)
}

func TestAnalyticsSummaryEmpty(t *testing.T) {
	uc := NewAnalyticsUsecase(&fakeAnalyticsRepo{}, &fakePublisher{})

	summary, err := uc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalEvents)
	assert.NotNil(t, summary.EventsByType)
	assert.NotNil(t, summary.RecentEvents)
	assert.Empty(t, summary.EventsByType)
	assert.Empty(t, summary.RecentEvents)
}
