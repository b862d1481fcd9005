package room

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type DeleteRoomUseCase struct {
	roomRepo    room.Repository
	kafkaClient *event.KafkaProducerClient
	snapshots   *SnapshotProvider
	logger      logger.Logger
}

func NewDeleteRoomUseCase(repo room.Repository, kClient *event.KafkaProducerClient, snapshots *SnapshotProvider, log logger.Logger) *DeleteRoomUseCase {
	return &DeleteRoomUseCase{
		roomRepo:    repo,
		kafkaClient: kClient,
		snapshots:   snapshots,
		logger:      log,
	}
}

func (uc *DeleteRoomUseCase) Execute(ctx context.Context, roomID uuid.UUID) error {
	existing, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return err
	}

	if err := uc.roomRepo.Delete(ctx, roomID); err != nil {
		return err
	}

	uc.snapshots.Invalidate(ctx)

	go func() {
		err := uc.kafkaClient.PublishRoomEvent(context.Background(), event.RoomEventPayload{
			EventType:  event.RoomEventTypeDeleted,
			RoomID:     roomID,
			PropertyID: existing.PropertyID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'deleted' event", err, zap.String("room_id", roomID.String()))
		}
	}()

	return nil
}
