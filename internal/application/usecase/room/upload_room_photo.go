package room

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/application/service"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type UploadRoomPhotoUseCase struct {
	roomRepo  room.Repository
	uploader  service.Uploader
	snapshots *SnapshotProvider
	logger    logger.Logger
}

func NewUploadRoomPhotoUseCase(repo room.Repository, uploader service.Uploader, snapshots *SnapshotProvider, log logger.Logger) *UploadRoomPhotoUseCase {
	return &UploadRoomPhotoUseCase{
		roomRepo:  repo,
		uploader:  uploader,
		snapshots: snapshots,
		logger:    log,
	}
}

type UploadRoomPhotoInput struct {
	RoomID uuid.UUID
	File   io.Reader
}

type UploadRoomPhotoOutput struct {
	PhotoURL string
}

func (uc *UploadRoomPhotoUseCase) Execute(ctx context.Context, input UploadRoomPhotoInput) (*UploadRoomPhotoOutput, error) {
	existing, err := uc.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	folder := fmt.Sprintf("properties/%s/rooms/%s", existing.PropertyID, existing.ID)
	url, err := uc.uploader.Upload(ctx, input.File, folder, uuid.New().String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload room photo", err)
	}

	existing.PhotoURLs = append(existing.PhotoURLs, url)
	if err := uc.roomRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.snapshots.Invalidate(ctx)

	return &UploadRoomPhotoOutput{PhotoURL: url}, nil
}
