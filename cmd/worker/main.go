package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avevent/backend/config"
	"github.com/avevent/backend/internal/email"
	"github.com/avevent/backend/internal/kafka"
	"github.com/avevent/backend/internal/logging"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logging.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.Email)

	slog.Info("notification worker started",
		"topic", cfg.Kafka.NotificationsTopic,
		"group", cfg.Kafka.GroupID,
		"email_enabled", sender.IsEnabled())

	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.IntakeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Error("decode event", "error", err)
			return nil
		}
		dispatch(sender, event)
		return nil
	}); err != nil && ctx.Err() == nil {
		logging.Fatal("consumer stopped", "error", err)
	}
}

// dispatch maps an intake event onto its notification mails. Delivery
// failures are logged and the event is considered handled; notifications
// are best-effort and never retried.
func dispatch(sender *email.Sender, event kafka.IntakeEvent) {
	switch event.Type {
	case kafka.EventInquiryCreated:
		data := email.Data{
			Name:        event.Name,
			Email:       event.Recipient,
			Phone:       event.Phone,
			ServiceType: event.ServiceType,
			InquiryID:   event.EntityID,
			EventDate:   event.EventDate,
			Message:     event.Message,
		}
		if err := sender.Send(email.TemplateInquiryConfirmation, event.Recipient, data); err != nil {
			slog.Error("send inquiry confirmation", "inquiry_id", event.EntityID, "error", err)
		}
		if admin := sender.AdminAddress(); admin != "" {
			if err := sender.Send(email.TemplateAdminNotification, admin, data); err != nil {
				slog.Error("send admin notification", "inquiry_id", event.EntityID, "error", err)
			}
		}
	case kafka.EventBookingCreated:
		data := email.Data{
			ClientName:  event.Name,
			BookingID:   event.EntityID,
			EventName:   event.EventName,
			EventDate:   event.EventDate,
			Venue:       event.Venue,
			TotalAmount: event.TotalAmount,
		}
		if err := sender.Send(email.TemplateBookingConfirmation, event.Recipient, data); err != nil {
			slog.Error("send booking confirmation", "booking_id", event.EntityID, "error", err)
		}
	default:
		slog.Warn("unknown event type", "type", event.Type)
	}
}
