package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type GuestListFilter struct {
	Name        string
	Phone       string
	Email       string
	Gender      *domain.Gender
	Nationality string
	Page        int
	Limit       int
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	FindByID(ctx context.Context, id int64) (*domain.Guest, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Guest, error)
	FindByEmail(ctx context.Context, email string) (*domain.Guest, error)
	List(ctx context.Context, filter GuestListFilter) ([]*domain.Guest, int64, error)
	SearchByName(ctx context.Context, name string, limit int) ([]*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id int64) error
}
