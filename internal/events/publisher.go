// Package events publishes analytics events to Kafka for downstream
// consumers (warehousing, campaign attribution). Publishing is best-effort:
// the Mongo record is the source of truth and a broker outage must never
// fail a user request.
package events

import (
	"context"
	"encoding/json"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/patriotcart/savings-api/internal/config"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, event *models.AnalyticsEvent)
	Close() error
}

func NewPublisher(cfg *config.Config) Publisher {
	if !cfg.Kafka.Enabled {
		return &noopPublisher{}
	}
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Kafka.Brokers...),
			Topic:    cfg.Kafka.Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func (p *kafkaPublisher) Publish(ctx context.Context, event *models.AnalyticsEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		log.Errorw(ctx, "marshal analytics event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventType),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw(ctx, "publish analytics event",
			"event_type", event.EventType, "error", err)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, *models.AnalyticsEvent) {}
func (noopPublisher) Close() error                                    { return nil }
