package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/patriotcart/savings-api/internal/events"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recentEventsLimit = 10

// TrackEventParams describes one analytics event to record. ProductID is
// optional; an unknown or malformed product id is recorded without the
// product reference rather than rejected.
type TrackEventParams struct {
	UserID    string
	EventType models.EventType
	ProductID string
	Metadata  map[string]any
	IPAddress string
	UserAgent string
}

type AnalyticsUsecase interface {
	Track(ctx context.Context, params TrackEventParams) error
	Summary(ctx context.Context, userID string) (*models.AnalyticsSummary, error)
}

type analyticsUsecase struct {
	repo      mongodb.AnalyticsRepository
	publisher events.Publisher
}

func NewAnalyticsUsecase(repo mongodb.AnalyticsRepository, publisher events.Publisher) AnalyticsUsecase {
	return &analyticsUsecase{
		repo:      repo,
		publisher: publisher,
	}
}

func (uc *analyticsUsecase) Track(ctx context.Context, params TrackEventParams) error {
	if !params.EventType.IsValid() {
		return fmt.Errorf("%w: invalid event type %q", models.ErrInvalidArgument, params.EventType)
	}

	event := &models.AnalyticsEvent{
		UserID:    params.UserID,
		EventType: params.EventType,
		Metadata:  params.Metadata,
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
	}
	if params.ProductID != "" {
		if oid, err := primitive.ObjectIDFromHex(params.ProductID); err == nil {
			event.ProductID = oid
		}
	}

	if err := uc.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("track event: %w", err)
	}

	uc.publisher.Publish(ctx, event)
	log.Infow(ctx, "tracked analytics event",
		"event_type", event.EventType, "user_id", event.UserID)
	return nil
}

func (uc *analyticsUsecase) Summary(ctx context.Context, userID string) (*models.AnalyticsSummary, error) {
	total, err := uc.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}

	counts, err := uc.repo.CountsByType(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}

	recent, err := uc.repo.RecentByUser(ctx, userID, recentEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}

	if counts == nil {
		counts = []models.EventTypeCount{}
	}
	if recent == nil {
		recent = []models.AnalyticsEvent{}
	}
	return &models.AnalyticsSummary{
		TotalEvents:  total,
		EventsByType: counts,
		RecentEvents: recent,
	}, nil
}
