package room

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/adapters/event"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

// ProcessRoomEventUseCase is the worker side of the room event stream: on
// any room change it rebuilds the cached snapshot from Postgres so search
// traffic keeps hitting a warm cache.
type ProcessRoomEventUseCase struct {
	roomRepo room.Repository
	cache    room.SnapshotCache
	logger   logger.Logger
}

func NewProcessRoomEventUseCase(repo room.Repository, cache room.SnapshotCache, log logger.Logger) *ProcessRoomEventUseCase {
	return &ProcessRoomEventUseCase{
		roomRepo: repo,
		cache:    cache,
		logger:   log,
	}
}

func (uc *ProcessRoomEventUseCase) Execute(ctx context.Context, payload event.RoomEventPayload) error {
	switch payload.EventType {
	case event.RoomEventTypeCreated, event.RoomEventTypeUpdated, event.RoomEventTypeDeleted:

	default:
		uc.logger.Warn("Skipping unknown room event type", zap.String("event_type", payload.EventType))
		return nil
	}

	rooms, err := uc.roomRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("cannot rebuild room snapshot: %w", err)
	}
	if err := uc.cache.Set(ctx, rooms); err != nil {
		return fmt.Errorf("cannot store room snapshot: %w", err)
	}

	uc.logger.Info("Room snapshot rebuilt",
		zap.String("event_type", payload.EventType),
		zap.String("room_id", payload.RoomID.String()),
		zap.Int("room_count", len(rooms)))
	return nil
}
