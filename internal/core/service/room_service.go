package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

type RoomService struct {
	rooms     ports.RoomRepository
	roomTypes ports.RoomTypeRepository
	logger    zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, roomTypes ports.RoomTypeRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, roomTypes: roomTypes, logger: logger}
}

func (s *RoomService) List(ctx context.Context, filter ports.RoomListFilter) (*ports.RoomListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.rooms.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.RoomListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *RoomService) Available(ctx context.Context, filter ports.AvailabilityFilter) ([]*ports.AvailableRoom, error) {
	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return nil, domain.ErrInvalidInput
	}
	return s.rooms.Available(ctx, filter)
}

func (s *RoomService) Get(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.roomTypes.FindByID(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}
	if _, err := s.rooms.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrRoomExists
	} else if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, err
	}

	actorID := input.ActorID
	room := &domain.Room{
		Name:               input.Name,
		RoomTypeID:         input.RoomTypeID,
		Description:        input.Description,
		Status:             domain.RoomAvailable,
		HousekeepingStatus: domain.RoomClean,
		CreatedAt:          time.Now().UTC(),
		CreatedBy:          &actorID,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("name", created.Name).Msg("room created")
	return created, nil
}

func (s *RoomService) Update(ctx context.Context, input ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != room.Name {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		if existing, err := s.rooms.FindByName(ctx, *input.Name); err == nil && existing.ID != room.ID {
			return nil, domain.ErrRoomExists
		} else if err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}
		room.Name = *input.Name
	}
	if input.RoomTypeID != nil && *input.RoomTypeID != room.RoomTypeID {
		if _, err := s.roomTypes.FindByID(ctx, *input.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *input.RoomTypeID
	}
	if input.Description != nil {
		room.Description = *input.Description
	}

	touch(&room.UpdatedAt, &room.UpdatedBy, input.ActorID)
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) SetStatus(ctx context.Context, id int64, status domain.RoomStatus, actorID int64) (*domain.Room, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Status = status
	touch(&room.UpdatedAt, &room.UpdatedBy, actorID)
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) SetHousekeeping(ctx context.Context, id int64, status domain.HousekeepingStatus, actorID int64) (*domain.Room, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.HousekeepingStatus = status
	touch(&room.UpdatedAt, &room.UpdatedBy, actorID)
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	return s.rooms.Delete(ctx, id)
}
