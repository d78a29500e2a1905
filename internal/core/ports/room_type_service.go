package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateRoomTypeInput struct {
	Code          string
	Name          string
	BaseOccupancy int
	MaxOccupancy  int
	BaseRate      float64
	HourRate      float64
	ExtraAdultFee float64
	ExtraChildFee float64
	Description   string
	ActorID       int64
}

type UpdateRoomTypeInput struct {
	ID            int64
	Code          *string
	Name          *string
	BaseOccupancy *int
	MaxOccupancy  *int
	BaseRate      *float64
	HourRate      *float64
	ExtraAdultFee *float64
	ExtraChildFee *float64
	Description   *string
	ActorID       int64
}

type RoomTypeListResult struct {
	Items []*domain.RoomType
	Total int64
	Page  int
	Limit int
}

type RoomTypeService interface {
	List(ctx context.Context, filter RoomTypeListFilter) (*RoomTypeListResult, error)
	Get(ctx context.Context, id int64) (*domain.RoomType, error)
	Create(ctx context.Context, input CreateRoomTypeInput) (*domain.RoomType, error)
	Update(ctx context.Context, input UpdateRoomTypeInput) (*domain.RoomType, error)
	Delete(ctx context.Context, id int64) error
}
