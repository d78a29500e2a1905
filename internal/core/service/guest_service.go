package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

const searchLimit = 20

type GuestService struct {
	repo   ports.GuestRepository
	logger zerolog.Logger
}

func NewGuestService(repo ports.GuestRepository, logger zerolog.Logger) *GuestService {
	return &GuestService{repo: repo, logger: logger}
}

func (s *GuestService) List(ctx context.Context, filter ports.GuestListFilter) (*ports.GuestListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.GuestListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *GuestService) SearchByName(ctx context.Context, name string) ([]*domain.Guest, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.SearchByName(ctx, name, searchLimit)
}

func (s *GuestService) Get(ctx context.Context, id int64) (*domain.Guest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GuestService) Create(ctx context.Context, input ports.CreateGuestInput) (*domain.Guest, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Gender != nil && !input.Gender.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := s.checkContactConflicts(ctx, input.Phone, input.Email, 0); err != nil {
		return nil, err
	}

	actorID := input.ActorID
	guest := &domain.Guest{
		Name:        input.Name,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Nationality: input.Nationality,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   &actorID,
	}

	created, err := s.repo.Create(ctx, guest)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("guest_id", created.ID).Msg("guest created")
	return created, nil
}

func (s *GuestService) Update(ctx context.Context, input ports.UpdateGuestInput) (*domain.Guest, error) {
	guest, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	phone, email := guest.Phone, guest.Email
	if input.Phone != nil {
		phone = *input.Phone
	}
	if input.Email != nil {
		email = *input.Email
	}
	if err := s.checkContactConflicts(ctx, phone, email, guest.ID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		guest.Name = *input.Name
	}
	if input.Gender != nil {
		if !input.Gender.Valid() {
			return nil, domain.ErrInvalidInput
		}
		guest.Gender = input.Gender
	}
	if input.DateOfBirth != nil {
		guest.DateOfBirth = input.DateOfBirth
	}
	if input.Nationality != nil {
		guest.Nationality = *input.Nationality
	}
	guest.Phone, guest.Email = phone, email
	if input.Address != nil {
		guest.Address = *input.Address
	}
	if input.Description != nil {
		guest.Description = *input.Description
	}

	touch(&guest.UpdatedAt, &guest.UpdatedBy, input.ActorID)
	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkContactConflicts rejects phone or email already registered to a
// different guest. Empty contact fields are never conflicts.
func (s *GuestService) checkContactConflicts(ctx context.Context, phone, email string, selfID int64) error {
	if phone != "" {
		existing, err := s.repo.FindByPhone(ctx, phone)
		if err == nil && existing.ID != selfID {
			return domain.ErrGuestExists
		}
		if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
			return err
		}
	}
	if email != "" {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return domain.ErrGuestExists
		}
		if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
			return err
		}
	}
	return nil
}
