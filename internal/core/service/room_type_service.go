package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

type RoomTypeService struct {
	repo   ports.RoomTypeRepository
	logger zerolog.Logger
}

func NewRoomTypeService(repo ports.RoomTypeRepository, logger zerolog.Logger) *RoomTypeService {
	return &RoomTypeService{repo: repo, logger: logger}
}

func (s *RoomTypeService) List(ctx context.Context, filter ports.RoomTypeListFilter) (*ports.RoomTypeListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.RoomTypeListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *RoomTypeService) Get(ctx context.Context, id int64) (*domain.RoomType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomTypeService) Create(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
	if input.Code == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.BaseOccupancy < 1 || input.MaxOccupancy < input.BaseOccupancy {
		return nil, domain.ErrInvalidInput
	}
	if input.BaseRate < 0 || input.HourRate < 0 || input.ExtraAdultFee < 0 || input.ExtraChildFee < 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByCode(ctx, input.Code); err == nil {
		return nil, domain.ErrRoomTypeExists
	} else if !errors.Is(err, domain.ErrRoomTypeNotFound) {
		return nil, err
	}

	actorID := input.ActorID
	rt := &domain.RoomType{
		Code:          input.Code,
		Name:          input.Name,
		BaseOccupancy: input.BaseOccupancy,
		MaxOccupancy:  input.MaxOccupancy,
		BaseRate:      input.BaseRate,
		HourRate:      input.HourRate,
		ExtraAdultFee: input.ExtraAdultFee,
		ExtraChildFee: input.ExtraChildFee,
		Description:   input.Description,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     &actorID,
	}

	created, err := s.repo.Create(ctx, rt)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("code", created.Code).Msg("room type created")
	return created, nil
}

func (s *RoomTypeService) Update(ctx context.Context, input ports.UpdateRoomTypeInput) (*domain.RoomType, error) {
	rt, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Code != nil && *input.Code != rt.Code {
		if *input.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, err := s.repo.FindByCode(ctx, *input.Code); err == nil {
			return nil, domain.ErrRoomTypeExists
		} else if !errors.Is(err, domain.ErrRoomTypeNotFound) {
			return nil, err
		}
		rt.Code = *input.Code
	}
	if input.Name != nil {
		rt.Name = *input.Name
	}
	if input.BaseOccupancy != nil {
		rt.BaseOccupancy = *input.BaseOccupancy
	}
	if input.MaxOccupancy != nil {
		rt.MaxOccupancy = *input.MaxOccupancy
	}
	if rt.BaseOccupancy < 1 || rt.MaxOccupancy < rt.BaseOccupancy {
		return nil, domain.ErrInvalidInput
	}
	if input.BaseRate != nil {
		rt.BaseRate = *input.BaseRate
	}
	if input.HourRate != nil {
		rt.HourRate = *input.HourRate
	}
	if input.ExtraAdultFee != nil {
		rt.ExtraAdultFee = *input.ExtraAdultFee
	}
	if input.ExtraChildFee != nil {
		rt.ExtraChildFee = *input.ExtraChildFee
	}
	if input.Description != nil {
		rt.Description = *input.Description
	}

	touch(&rt.UpdatedAt, &rt.UpdatedBy, input.ActorID)
	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *RoomTypeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
