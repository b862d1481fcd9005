package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	roomUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
)

type RoomHandler struct {
	createUseCase *roomUC.CreateRoomUseCase
	updateUseCase *roomUC.UpdateRoomUseCase
	deleteUseCase *roomUC.DeleteRoomUseCase
	getUseCase    *roomUC.GetRoomUseCase
	listUseCase   *roomUC.ListRoomsUseCase
	uploadUseCase *roomUC.UploadRoomPhotoUseCase
}

func NewRoomHandler(
	createUC *roomUC.CreateRoomUseCase,
	updateUC *roomUC.UpdateRoomUseCase,
	deleteUC *roomUC.DeleteRoomUseCase,
	getUC *roomUC.GetRoomUseCase,
	listUC *roomUC.ListRoomsUseCase,
	uploadUC *roomUC.UploadRoomPhotoUseCase,
) *RoomHandler {
	return &RoomHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		uploadUseCase: uploadUC,
	}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid property ID", err))
		return
	}

	input := roomUC.CreateRoomInput{
		PropertyID:     propertyID,
		RoomCode:       req.RoomCode,
		RoomName:       req.RoomName,
		Status:         req.Status,
		RentalPrice:    req.RentalPrice,
		ElectricityFee: req.ElectricityFee,
		WaterFee:       req.WaterFee,
		ServiceFee:     req.ServiceFee,
		ParkingFee:     req.ParkingFee,
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room_id": output.RoomID.String()})
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid room ID", err))
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := roomUC.UpdateRoomInput{
		RoomID:         roomID,
		RoomCode:       req.RoomCode,
		RoomName:       req.RoomName,
		Status:         req.Status,
		RentalPrice:    req.RentalPrice,
		ElectricityFee: req.ElectricityFee,
		WaterFee:       req.WaterFee,
		ServiceFee:     req.ServiceFee,
		ParkingFee:     req.ParkingFee,
	}
	if req.TenantID != nil {
		tenantID, err := uuid.Parse(*req.TenantID)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid tenant ID", err))
			return
		}
		input.TenantID = &tenantID
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToRoomDTO(updated))
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid room ID", err))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), roomID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid room ID", err))
		return
	}

	r, err := h.getUseCase.Execute(c.Request.Context(), roomID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToRoomDTO(r))
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("property_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'property_id' query param is required", err))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rooms, err := h.listUseCase.Execute(c.Request.Context(), roomUC.ListRoomsInput{
		PropertyID: propertyID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]RoomDTO, len(rooms))
	for i, r := range rooms {
		dtos[i] = ToRoomDTO(r)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *RoomHandler) UploadRoomPhoto(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid room ID", err))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'photo' form file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadUseCase.Execute(c.Request.Context(), roomUC.UploadRoomPhotoInput{
		RoomID: roomID,
		File:   file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photo_url": output.PhotoURL})
}
