package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type ServiceListFilter struct {
	Name     string
	Unit     string
	Status   *domain.ServiceStatus
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

// CatalogRepository persists the billable service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, filter ServiceListFilter) ([]*domain.Service, int64, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id int64) error
}
