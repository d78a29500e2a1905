package ports

import (
	"context"
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

// RoomListFilter carries query parameters for listing rooms.
type RoomListFilter struct {
	Name               string
	RoomTypeID         *int64
	Status             *domain.RoomStatus
	HousekeepingStatus *domain.HousekeepingStatus
	Page               int
	Limit              int
}

// AvailabilityFilter selects rooms free of overlapping open bookings.
type AvailabilityFilter struct {
	From        *time.Time
	To          *time.Time
	RoomID      *int64
	RoomTypeID  *int64
	Occupancy   *int
	MinBaseRate *float64
	MaxBaseRate *float64
}

// AvailableRoom is a room joined with its rate card for availability results.
type AvailableRoom struct {
	Room     domain.Room
	RoomType domain.RoomType
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id int64) (*domain.Room, error)
	FindByName(ctx context.Context, name string) (*domain.Room, error)
	List(ctx context.Context, filter RoomListFilter) ([]*domain.Room, int64, error)
	Available(ctx context.Context, filter AvailabilityFilter) ([]*AvailableRoom, error)
	Update(ctx context.Context, room *domain.Room) error
	// Delete fails with domain.ErrRoomInUse while bookings reference it.
	Delete(ctx context.Context, id int64) error
}
