package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusVacant      = "vacant"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// TenantSummary is the slice of tenant data embedded into a room for
// list rendering and search. It is only present while the room is occupied.
type TenantSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
}

type Room struct {
	ID             uuid.UUID      `json:"id"`
	PropertyID     uuid.UUID      `json:"property_id"`
	RoomCode       string         `json:"room_code"`
	RoomName       string         `json:"room_name"`
	Status         string         `json:"status"`
	RentalPrice    float64        `json:"rental_price"`
	ElectricityFee float64        `json:"electricity_fee"`
	WaterFee       float64        `json:"water_fee"`
	ServiceFee     float64        `json:"service_fee"`
	ParkingFee     float64        `json:"parking_fee"`
	PhotoURLs      []string       `json:"photo_urls"`
	Tenant         *TenantSummary `json:"tenant,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidStatus = errors.New("invalid room status")
)

func (r *Room) Validate() error {
	if r.RoomCode == "" {
		return errors.New("room code is required")
	}
	if r.RoomName == "" {
		return errors.New("room name is required")
	}
	switch r.Status {
	case StatusVacant, StatusOccupied, StatusMaintenance:

	default:
		return ErrInvalidStatus
	}
	if r.RentalPrice < 0 || r.ElectricityFee < 0 || r.WaterFee < 0 || r.ServiceFee < 0 || r.ParkingFee < 0 {
		return errors.New("price and fees must be non-negative")
	}
	if r.Tenant != nil && r.Status != StatusOccupied {
		return errors.New("only an occupied room can carry a tenant")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*Room, error)

	// ListAll returns every room with its tenant summary joined in,
	// ordered by room code. The search path consumes this as one snapshot.
	ListAll(ctx context.Context) ([]Room, error)
}

// SnapshotCache caches the full room list between writes so keystroke-level
// search does not hit Postgres on every request.
type SnapshotCache interface {
	Get(ctx context.Context) ([]Room, bool, error)
	Set(ctx context.Context, rooms []Room) error
	Invalidate(ctx context.Context) error
}
