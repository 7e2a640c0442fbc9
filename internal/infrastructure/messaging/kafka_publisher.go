package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cdfmis/analytics-service/pkg/events"
	"github.com/cdfmis/analytics-service/pkg/kafka"
)

// KafkaPublisher implements port.EventPublisher over the shared Kafka producer.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a new Kafka event publisher.
func NewKafkaPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to the events topic, keyed by aggregate ID so
// all events for one assessment land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.Info("publishing event",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("topic", p.topic),
		)

		messages = append(messages, kafka.Message{
			Key:     []byte(evt.AggregateID().String()),
			Value:   payload,
			Headers: map[string]string{"event_type": evt.EventType()},
		})
	}

	return p.producer.Publish(ctx, p.topic, messages...)
}
