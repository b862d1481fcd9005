package http

import (
	"time"

	roomUC "github.com/Vantrieu2000/rental-management-app-sub002/internal/application/usecase/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/roomsearch"
)

// Room DTOs

type CreateRoomRequest struct {
	PropertyID     string  `json:"property_id" binding:"required,uuid"`
	RoomCode       string  `json:"room_code" binding:"required"`
	RoomName       string  `json:"room_name" binding:"required"`
	Status         string  `json:"status" binding:"omitempty,oneof=vacant occupied maintenance"`
	RentalPrice    float64 `json:"rental_price" binding:"gte=0"`
	ElectricityFee float64 `json:"electricity_fee" binding:"gte=0"`
	WaterFee       float64 `json:"water_fee" binding:"gte=0"`
	ServiceFee     float64 `json:"service_fee" binding:"gte=0"`
	ParkingFee     float64 `json:"parking_fee" binding:"gte=0"`
}

type UpdateRoomRequest struct {
	RoomCode       string  `json:"room_code" binding:"required"`
	RoomName       string  `json:"room_name" binding:"required"`
	Status         string  `json:"status" binding:"required,oneof=vacant occupied maintenance"`
	RentalPrice    float64 `json:"rental_price" binding:"gte=0"`
	ElectricityFee float64 `json:"electricity_fee" binding:"gte=0"`
	WaterFee       float64 `json:"water_fee" binding:"gte=0"`
	ServiceFee     float64 `json:"service_fee" binding:"gte=0"`
	ParkingFee     float64 `json:"parking_fee" binding:"gte=0"`
	TenantID       *string `json:"tenant_id" binding:"omitempty,uuid"`
}

type TenantSummaryDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type RoomDTO struct {
	ID             string            `json:"id"`
	PropertyID     string            `json:"property_id"`
	RoomCode       string            `json:"room_code"`
	RoomName       string            `json:"room_name"`
	Status         string            `json:"status"`
	RentalPrice    float64           `json:"rental_price"`
	ElectricityFee float64           `json:"electricity_fee"`
	WaterFee       float64           `json:"water_fee"`
	ServiceFee     float64           `json:"service_fee"`
	ParkingFee     float64           `json:"parking_fee"`
	PhotoURLs      []string          `json:"photo_urls"`
	Tenant         *TenantSummaryDTO `json:"tenant,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func ToRoomDTO(r *room.Room) RoomDTO {
	dto := RoomDTO{
		ID:             r.ID.String(),
		PropertyID:     r.PropertyID.String(),
		RoomCode:       r.RoomCode,
		RoomName:       r.RoomName,
		Status:         r.Status,
		RentalPrice:    r.RentalPrice,
		ElectricityFee: r.ElectricityFee,
		WaterFee:       r.WaterFee,
		ServiceFee:     r.ServiceFee,
		ParkingFee:     r.ParkingFee,
		PhotoURLs:      r.PhotoURLs,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Tenant != nil {
		dto.Tenant = &TenantSummaryDTO{
			ID:       r.Tenant.ID.String(),
			FullName: r.Tenant.FullName,
			Phone:    r.Tenant.Phone,
		}
	}
	return dto
}

// Search DTOs

type SegmentDTO struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

func ToSegmentDTOs(segments []roomsearch.Segment) []SegmentDTO {
	if segments == nil {
		return nil
	}
	out := make([]SegmentDTO, len(segments))
	for i, s := range segments {
		out[i] = SegmentDTO{Text: s.Text, Highlighted: s.Highlighted}
	}
	return out
}

type RoomSearchResultDTO struct {
	Room           RoomDTO      `json:"room"`
	CodeSegments   []SegmentDTO `json:"code_segments"`
	NameSegments   []SegmentDTO `json:"name_segments"`
	TenantSegments []SegmentDTO `json:"tenant_segments,omitempty"`
}

func ToRoomSearchResultDTO(res roomUC.RoomSearchResult) RoomSearchResultDTO {
	r := res.Room
	return RoomSearchResultDTO{
		Room:           ToRoomDTO(&r),
		CodeSegments:   ToSegmentDTOs(res.CodeSegments),
		NameSegments:   ToSegmentDTOs(res.NameSegments),
		TenantSegments: ToSegmentDTOs(res.TenantSegments),
	}
}

type SearchRoomsResponse struct {
	Results          []RoomSearchResultDTO `json:"results"`
	HasActiveFilters bool                  `json:"has_active_filters"`
}

// Live search session DTOs

type UpdateSessionQueryRequest struct {
	Query string `json:"query"`
}

type UpdateSessionFiltersRequest struct {
	Status        *string  `json:"status" binding:"omitempty,oneof=vacant occupied maintenance"`
	PaymentStatus *string  `json:"payment_status"`
	MinPrice      *float64 `json:"min_price" binding:"omitempty,gte=0"`
	MaxPrice      *float64 `json:"max_price" binding:"omitempty,gte=0"`
}

func (req *UpdateSessionFiltersRequest) ToFilterParams() roomsearch.FilterParams {
	return roomsearch.FilterParams{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
	}
}

type SearchSessionStateDTO struct {
	SessionID        string    `json:"session_id"`
	RawQuery         string    `json:"raw_query"`
	DebouncedQuery   string    `json:"debounced_query"`
	Results          []RoomDTO `json:"results"`
	HasActiveFilters bool      `json:"has_active_filters"`
	IsSearching      bool      `json:"is_searching"`
}

func ToSearchSessionStateDTO(sessionID string, state roomsearch.State) SearchSessionStateDTO {
	results := make([]RoomDTO, len(state.Results))
	for i := range state.Results {
		results[i] = ToRoomDTO(&state.Results[i])
	}
	return SearchSessionStateDTO{
		SessionID:        sessionID,
		RawQuery:         state.RawQuery,
		DebouncedQuery:   state.DebouncedQuery,
		Results:          results,
		HasActiveFilters: state.HasActiveFilters,
		IsSearching:      state.IsSearching,
	}
}
