package ports

import (
	"context"
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateGuestInput struct {
	Name        string
	Gender      *domain.Gender
	DateOfBirth *time.Time
	Nationality string
	Phone       string
	Email       string
	Address     string
	Description string
	ActorID     int64
}

type UpdateGuestInput struct {
	ID          int64
	Name        *string
	Gender      *domain.Gender
	DateOfBirth *time.Time
	Nationality *string
	Phone       *string
	Email       *string
	Address     *string
	Description *string
	ActorID     int64
}

type GuestListResult struct {
	Items []*domain.Guest
	Total int64
	Page  int
	Limit int
}

type GuestService interface {
	List(ctx context.Context, filter GuestListFilter) (*GuestListResult, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Guest, error)
	Get(ctx context.Context, id int64) (*domain.Guest, error)
	Create(ctx context.Context, input CreateGuestInput) (*domain.Guest, error)
	Update(ctx context.Context, input UpdateGuestInput) (*domain.Guest, error)
	Delete(ctx context.Context, id int64) error
}
