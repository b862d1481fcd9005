package room

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

type ListRoomsUseCase struct {
	roomRepo room.Repository
}

func NewListRoomsUseCase(repo room.Repository) *ListRoomsUseCase {
	return &ListRoomsUseCase{roomRepo: repo}
}

type ListRoomsInput struct {
	PropertyID uuid.UUID
	Limit      int
	Offset     int
}

func (uc *ListRoomsUseCase) Execute(ctx context.Context, input ListRoomsInput) ([]*room.Room, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}
	return uc.roomRepo.ListByProperty(ctx, input.PropertyID, input.Limit, input.Offset)
}
