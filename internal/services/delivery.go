package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=delivery.go -destination=delivery_mock_test.go -package=services

// Mailer is the notification capability.
type Mailer interface {
	SendMotivation(ctx context.Context, to, imagePath string, mode models.Mode) error // Emails the image to the user
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DeliveryService notifies users and publishes generation events. Both are best effort.
type DeliveryService struct {
	mailer      Mailer
	kafkaWriter KafkaWriter
}

// NewDeliveryService creates a new DeliveryService. Either dependency may be nil.
func NewDeliveryService(mailer Mailer, kafkaWriter KafkaWriter) *DeliveryService {
	return &DeliveryService{mailer: mailer, kafkaWriter: kafkaWriter}
}

// Deliver emails the generated image. It never fails the caller; the return value
// reports whether the email went out.
func (s *DeliveryService) Deliver(ctx context.Context, user models.UserDB, artifactPath string, mode models.Mode) bool {
	if s.mailer == nil {
		logger.Log.Warnw("Mailer not configured, skipping notification", "user_id", user.UserID)
		return false
	}

	if err := s.mailer.SendMotivation(ctx, user.Email, artifactPath, mode); err != nil {
		logger.Log.Warnw("notification failed", "user_id", user.UserID, "email", user.Email, "error", err)
		return false
	}

	logger.Log.Infow("notification sent", "user_id", user.UserID, "email", user.Email)
	return true
}

// PublishGenerated publishes a generation event to Kafka.
func (s *DeliveryService) PublishGenerated(ctx context.Context, event models.GenerationEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal generation event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish generation event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Generation event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}
