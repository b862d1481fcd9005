package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/persistence"
	roomUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/config"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

func main() {
	fmt.Println("Starting Rental Management Worker...")

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	roomRepo := persistence.NewPostgresRoomRepo(dbPool, appLogger)
	roomCache := persistence.NewRedisRoomCache(redisClient, cfg.Search.SnapshotTTL, appLogger)

	// Worker Use Case
	processRoomEventUC := roomUC.NewProcessRoomEventUseCase(roomRepo, roomCache, appLogger)

	// Kafka Consumer
	roomConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicRoomEvents,
		GroupID:  "room-snapshot-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer roomConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicRoomEvents)

	ctx := context.Background()
	for {
		msg, err := roomConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.RoomEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(roomConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for RoomID: %s", payload.EventType, payload.RoomID)

		err = processRoomEventUC.Execute(ctx, payload)
		if err != nil {
			log.Printf("ERROR: Failed to process event for RoomID %s: %v", payload.RoomID, err)
			continue
		}

		commitMessage(roomConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
