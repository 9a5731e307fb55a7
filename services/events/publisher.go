package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stylebook/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event types published for appointments.
const (
	TypeAppointmentCreated       = "appointment.created"
	TypeAppointmentRescheduled   = "appointment.rescheduled"
	TypeAppointmentStatusChanged = "appointment.status_changed"
)

// Publisher emits appointment events for downstream collaborators such as notifications.
type Publisher interface {
	Publish(ctx context.Context, event models.AppointmentEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher for the comma separated broker list,
// or a no-op publisher when the list is empty.
func NewPublisher(brokers string, logger *zap.Logger) Publisher {
	list := SplitBrokers(brokers)
	if len(list) == 0 {
		logger.Warn("event publishing disabled (no kafka brokers configured)")
		return NopPublisher{}
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(list...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
			// Topics are named after event types and are created on first publish.
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// SplitBrokers parses a comma separated broker list, skipping blanks.
func SplitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// KafkaPublisher writes one message per event to a topic named after the event type.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	msg := kafka.Message{
		Topic: event.Type,
		Key:   []byte(event.AppointmentID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	p.logger.Debug("published appointment event",
		zap.String("type", event.Type), zap.String("appointmentID", event.AppointmentID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.AppointmentEvent) error { return nil }
func (NopPublisher) Close() error                                           { return nil }
