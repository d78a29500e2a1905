package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateServiceInput struct {
	Name        string
	Unit        string
	Price       float64
	Description string
	ActorID     int64
}

type UpdateServiceInput struct {
	ID          int64
	Name        *string
	Unit        *string
	Description *string
	Status      *domain.ServiceStatus
	ActorID     int64
}

type ServiceListResult struct {
	Items []*domain.Service
	Total int64
	Page  int
	Limit int
}

type CatalogService interface {
	List(ctx context.Context, filter ServiceListFilter) (*ServiceListResult, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, input UpdateServiceInput) (*domain.Service, error)
	ChangePrice(ctx context.Context, id int64, price float64, actorID int64) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}
