package room

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type UpdateRoomUseCase struct {
	roomRepo    room.Repository
	kafkaClient *event.KafkaProducerClient
	snapshots   *SnapshotProvider
	logger      logger.Logger
}

func NewUpdateRoomUseCase(repo room.Repository, kClient *event.KafkaProducerClient, snapshots *SnapshotProvider, log logger.Logger) *UpdateRoomUseCase {
	return &UpdateRoomUseCase{
		roomRepo:    repo,
		kafkaClient: kClient,
		snapshots:   snapshots,
		logger:      log,
	}
}

type UpdateRoomInput struct {
	RoomID         uuid.UUID
	RoomCode       string
	RoomName       string
	Status         string
	RentalPrice    float64
	ElectricityFee float64
	WaterFee       float64
	ServiceFee     float64
	ParkingFee     float64

	// TenantID assigns (or, when nil, releases) the occupying tenant.
	TenantID *uuid.UUID
}

func (uc *UpdateRoomUseCase) Execute(ctx context.Context, input UpdateRoomInput) (*room.Room, error) {
	existing, err := uc.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	existing.RoomCode = input.RoomCode
	existing.RoomName = input.RoomName
	existing.Status = input.Status
	existing.RentalPrice = input.RentalPrice
	existing.ElectricityFee = input.ElectricityFee
	existing.WaterFee = input.WaterFee
	existing.ServiceFee = input.ServiceFee
	existing.ParkingFee = input.ParkingFee

	if input.TenantID != nil {
		existing.Tenant = &room.TenantSummary{ID: *input.TenantID}
	} else {
		existing.Tenant = nil
	}

	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.roomRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.snapshots.Invalidate(ctx)

	go func() {
		err := uc.kafkaClient.PublishRoomEvent(context.Background(), event.RoomEventPayload{
			EventType:  event.RoomEventTypeUpdated,
			RoomID:     existing.ID,
			PropertyID: existing.PropertyID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'updated' event", err, zap.String("room_id", existing.ID.String()))
		}
	}()

	// re-read so the tenant summary comes back joined, not just the id
	return uc.roomRepo.FindByID(ctx, existing.ID)
}
