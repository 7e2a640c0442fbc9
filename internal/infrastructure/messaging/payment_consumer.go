package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/application/usecase"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/pkg/kafka"
)

// eventTypePaymentDisbursed is the platform payment-service event that
// triggers an automatic risk reassessment.
const eventTypePaymentDisbursed = "payments.payment.disbursed"

// paymentEvent is the subset of the payment-service event payload we read.
type paymentEvent struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

// PaymentEventConsumer listens on the payment-service topic and reassesses
// payment risk whenever a payment is disbursed, keeping stored scores
// current as project spending accumulates.
type PaymentEventConsumer struct {
	consumer *kafka.Consumer
	logger   *slog.Logger
}

// NewPaymentEventConsumer creates a consumer bound to the payments topic.
func NewPaymentEventConsumer(
	cfg kafka.Config,
	topic string,
	assessPaymentRisk *usecase.AssessPaymentRisk,
	logger *slog.Logger,
) *PaymentEventConsumer {
	handler := func(ctx context.Context, msg kafka.Message) error {
		if msg.Headers["event_type"] != eventTypePaymentDisbursed {
			return nil
		}

		var evt paymentEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return fmt.Errorf("failed to decode payment event: %w", err)
		}
		if evt.PaymentID == uuid.Nil {
			return fmt.Errorf("payment event missing payment_id")
		}

		_, err := assessPaymentRisk.Execute(ctx, dto.AssessPaymentRiskRequest{PaymentID: evt.PaymentID})
		if err != nil {
			// The payment may not be visible to us yet; skip rather than
			// block the partition.
			if errors.Is(err, port.ErrPaymentNotFound) {
				logger.Warn("skipping reassessment for unknown payment",
					slog.String("payment_id", evt.PaymentID.String()),
				)
				return nil
			}
			return fmt.Errorf("failed to reassess payment %s: %w", evt.PaymentID, err)
		}

		logger.Info("payment reassessed after disbursement",
			slog.String("payment_id", evt.PaymentID.String()),
		)
		return nil
	}

	return &PaymentEventConsumer{
		consumer: kafka.NewConsumer(cfg, topic, handler, logger),
		logger:   logger,
	}
}

// Start consumes messages until the context is canceled.
func (c *PaymentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close closes the underlying reader.
func (c *PaymentEventConsumer) Close() error {
	return c.consumer.Close()
}
