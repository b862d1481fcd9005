package room

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type CreateRoomUseCase struct {
	roomRepo    room.Repository
	kafkaClient *event.KafkaProducerClient
	snapshots   *SnapshotProvider
	logger      logger.Logger
}

func NewCreateRoomUseCase(repo room.Repository, kClient *event.KafkaProducerClient, snapshots *SnapshotProvider, log logger.Logger) *CreateRoomUseCase {
	return &CreateRoomUseCase{
		roomRepo:    repo,
		kafkaClient: kClient,
		snapshots:   snapshots,
		logger:      log,
	}
}

type CreateRoomInput struct {
	PropertyID     uuid.UUID
	RoomCode       string
	RoomName       string
	Status         string
	RentalPrice    float64
	ElectricityFee float64
	WaterFee       float64
	ServiceFee     float64
	ParkingFee     float64
}

type CreateRoomOutput struct {
	RoomID uuid.UUID
}

func (uc *CreateRoomUseCase) Execute(ctx context.Context, input CreateRoomInput) (*CreateRoomOutput, error) {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = room.StatusVacant
	}

	newRoom := &room.Room{
		ID:             uuid.New(),
		PropertyID:     input.PropertyID,
		RoomCode:       input.RoomCode,
		RoomName:       input.RoomName,
		Status:         status,
		RentalPrice:    input.RentalPrice,
		ElectricityFee: input.ElectricityFee,
		WaterFee:       input.WaterFee,
		ServiceFee:     input.ServiceFee,
		ParkingFee:     input.ParkingFee,
		PhotoURLs:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := newRoom.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.roomRepo.Save(ctx, newRoom); err != nil {
		return nil, err
	}

	uc.snapshots.Invalidate(ctx)

	go func() {
		err := uc.kafkaClient.PublishRoomEvent(context.Background(), event.RoomEventPayload{
			EventType:  event.RoomEventTypeCreated,
			RoomID:     newRoom.ID,
			PropertyID: newRoom.PropertyID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'created' event", err, zap.String("room_id", newRoom.ID.String()))
		}
	}()

	return &CreateRoomOutput{RoomID: newRoom.ID}, nil
}
