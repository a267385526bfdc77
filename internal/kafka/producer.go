package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// IntakeEvent describes a committed public-write operation. The notification
// worker consumes these and dispatches the templated e-mail; delivery is
// best-effort and never feeds back into the request path.
type IntakeEvent struct {
	Type        string     `json:"type"`
	EntityID    string     `json:"entity_id"`
	Recipient   string     `json:"recipient"`
	Name        string     `json:"name"`
	ServiceType string     `json:"service_type,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Message     string     `json:"message,omitempty"`
	EventName   string     `json:"event_name,omitempty"`
	Venue       string     `json:"venue,omitempty"`
	TotalAmount float64    `json:"total_amount,omitempty"`
}

const (
	EventInquiryCreated = "inquiry_created"
	EventBookingCreated = "booking_created"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
