package room

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

type GetRoomUseCase struct {
	roomRepo room.Repository
}

func NewGetRoomUseCase(repo room.Repository) *GetRoomUseCase {
	return &GetRoomUseCase{roomRepo: repo}
}

func (uc *GetRoomUseCase) Execute(ctx context.Context, roomID uuid.UUID) (*room.Room, error) {
	return uc.roomRepo.FindByID(ctx, roomID)
}
