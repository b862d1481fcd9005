package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	roomUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/roomsearch"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
)

type RoomSearchHandler struct {
	searchUseCase *roomUC.SearchRoomsUseCase
	liveSearch    *roomUC.LiveSearchManager
}

func NewRoomSearchHandler(searchUC *roomUC.SearchRoomsUseCase, liveSearch *roomUC.LiveSearchManager) *RoomSearchHandler {
	return &RoomSearchHandler{
		searchUseCase: searchUC,
		liveSearch:    liveSearch,
	}
}

// SearchRooms is the one-shot search endpoint: filters and query in,
// ranked rooms with highlight segments out.
func (h *RoomSearchHandler) SearchRooms(c *gin.Context) {
	params := roomsearch.FilterParams{Query: c.Query("q")}

	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		params.PaymentStatus = &paymentStatus
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.NewInvalidInput("'min_price' must be a number", err))
			return
		}
		params.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.NewInvalidInput("'max_price' must be a number", err))
			return
		}
		params.MaxPrice = &v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	output, err := h.searchUseCase.Execute(c.Request.Context(), roomUC.SearchRoomsInput{
		Params: params,
		Limit:  limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	resp := SearchRoomsResponse{
		Results:          make([]RoomSearchResultDTO, len(output.Results)),
		HasActiveFilters: output.HasActiveFilters,
	}
	for i, res := range output.Results {
		resp.Results[i] = ToRoomSearchResultDTO(res)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSession opens a live search session for keystroke-driven search.
func (h *RoomSearchHandler) CreateSession(c *gin.Context) {
	id, err := h.liveSearch.CreateSession(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id.String()})
}

func (h *RoomSearchHandler) UpdateSessionQuery(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid session ID", err))
		return
	}

	var req UpdateSessionQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	state, err := h.liveSearch.UpdateQuery(c.Request.Context(), sessionID, req.Query)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSearchSessionStateDTO(sessionID.String(), state))
}

func (h *RoomSearchHandler) UpdateSessionFilters(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid session ID", err))
		return
	}

	var req UpdateSessionFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	state, err := h.liveSearch.UpdateFilters(c.Request.Context(), sessionID, req.ToFilterParams())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSearchSessionStateDTO(sessionID.String(), state))
}

// ClearSessionFilters resets filters and query in one atomic update,
// backing the clear-filters chip.
func (h *RoomSearchHandler) ClearSessionFilters(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid session ID", err))
		return
	}

	state, err := h.liveSearch.ClearFilters(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSearchSessionStateDTO(sessionID.String(), state))
}

func (h *RoomSearchHandler) GetSessionState(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid session ID", err))
		return
	}

	state, err := h.liveSearch.GetState(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSearchSessionStateDTO(sessionID.String(), state))
}

func (h *RoomSearchHandler) CloseSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid session ID", err))
		return
	}

	if err := h.liveSearch.CloseSession(sessionID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
