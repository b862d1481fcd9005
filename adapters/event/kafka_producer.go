package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/config"
)

const (
	TopicRoomEvents = "room.events"
)

const (
	RoomEventTypeCreated = "room.created"
	RoomEventTypeUpdated = "room.updated"
	RoomEventTypeDeleted = "room.deleted"
)

// RoomEventPayload is what the worker consumes to keep the cached room
// snapshot in sync with Postgres.
type RoomEventPayload struct {
	EventType  string    `json:"event_type"`
	RoomID     uuid.UUID `json:"room_id"`
	PropertyID uuid.UUID `json:"property_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	RoomEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'room.events'
	roomWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicRoomEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		RoomEventsWriter: roomWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishRoomEvent(ctx context.Context, payload RoomEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal room event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.RoomID.String()),
		Value: value,
	}
	if err := c.RoomEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish room event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.RoomEventsWriter != nil {
		c.RoomEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
