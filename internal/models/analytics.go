package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType enumerates the analytics events the frontend may report.
type EventType string

const (
	EventStoreClick       EventType = "store_click"
	EventListCreate       EventType = "list_create"
	EventListReorder      EventType = "list_reorder"
	EventSavingsAdd       EventType = "savings_add"
	EventPaywallView      EventType = "paywall_view"
	EventSubscribeSuccess EventType = "subscribe_success"
)

// ValidEventTypes lists the accepted event types in a stable order, used for
// validation error messages.
var ValidEventTypes = []EventType{
	EventStoreClick,
	EventListCreate,
	EventListReorder,
	EventSavingsAdd,
	EventPaywallView,
	EventSubscribeSuccess,
}

// IsValid reports whether e is one of the known event types.
func (e EventType) IsValid() bool {
	for _, v := range ValidEventTypes {
		if e == v {
			return true
		}
	}
	return false
}

// AnalyticsEvent is a single tracked user action.
type AnalyticsEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	EventType EventType          `bson:"event_type" json:"event_type"`
	ProductID primitive.ObjectID `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Metadata  map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	IPAddress string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// EventTypeCount is one bucket of the per-user analytics summary.
type EventTypeCount struct {
	EventType EventType `bson:"_id" json:"event_type"`
	Count     int64     `bson:"count" json:"count"`
}

// AnalyticsSummary aggregates a user's tracked events.
type AnalyticsSummary struct {
	TotalEvents  int64            `json:"total_events"`
	EventsByType []EventTypeCount `json:"events_by_type"`
	RecentEvents []AnalyticsEvent `json:"recent_events"`
}
