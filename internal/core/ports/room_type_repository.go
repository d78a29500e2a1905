package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

// RoomTypeListFilter carries query parameters for listing room types.
// Pointer fields are optional.
type RoomTypeListFilter struct {
	Code        string
	Name        string
	MinBaseRate *float64
	MaxBaseRate *float64
	Page        int
	Limit       int
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	FindByID(ctx context.Context, id int64) (*domain.RoomType, error)
	FindByCode(ctx context.Context, code string) (*domain.RoomType, error)
	List(ctx context.Context, filter RoomTypeListFilter) ([]*domain.RoomType, int64, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	// Delete fails with domain.ErrRoomTypeInUse while rooms reference it.
	Delete(ctx context.Context, id int64) error
}
