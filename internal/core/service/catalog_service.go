package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// CatalogService manages the billable service catalog.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, filter ports.ServiceListFilter) (*ports.ServiceListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ServiceListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" || input.Unit == "" || input.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	actorID := input.ActorID
	svc := &domain.Service{
		Name:        input.Name,
		Unit:        input.Unit,
		Price:       input.Price,
		Description: input.Description,
		Status:      domain.ServiceActive,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   &actorID,
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("name", created.Name).Msg("catalog service created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, input ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		svc.Name = *input.Name
	}
	if input.Unit != nil {
		if *input.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		svc.Unit = *input.Unit
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidInput
		}
		svc.Status = *input.Status
	}

	touch(&svc.UpdatedAt, &svc.UpdatedBy, input.ActorID)
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) ChangePrice(ctx context.Context, id int64, price float64, actorID int64) (*domain.Service, error) {
	if price < 0 {
		return nil, domain.ErrInvalidInput
	}
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Price = price
	touch(&svc.UpdatedAt, &svc.UpdatedBy, actorID)
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("service_id", id).Float64("price", price).Msg("service price changed")
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
