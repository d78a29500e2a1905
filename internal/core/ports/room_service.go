package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateRoomInput struct {
	Name        string
	RoomTypeID  int64
	Description string
	ActorID     int64
}

type UpdateRoomInput struct {
	ID          int64
	Name        *string
	RoomTypeID  *int64
	Description *string
	ActorID     int64
}

type RoomListResult struct {
	Items []*domain.Room
	Total int64
	Page  int
	Limit int
}

type RoomService interface {
	List(ctx context.Context, filter RoomListFilter) (*RoomListResult, error)
	Available(ctx context.Context, filter AvailabilityFilter) ([]*AvailableRoom, error)
	Get(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, input UpdateRoomInput) (*domain.Room, error)
	SetStatus(ctx context.Context, id int64, status domain.RoomStatus, actorID int64) (*domain.Room, error)
	SetHousekeeping(ctx context.Context, id int64, status domain.HousekeepingStatus, actorID int64) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
}
