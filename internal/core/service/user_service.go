package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// UserService implements Manager-only account administration.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context, filter ports.UserListFilter) (*ports.UserListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.UserListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if len(input.Username) < minUsernameLen || len(input.Password) < minPasswordLen || !input.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	actorID := input.ActorID
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.UserActive,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    &actorID,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("username", created.Username).Int64("actor_id", actorID).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		if len(*input.Username) < minUsernameLen {
			return nil, domain.ErrInvalidInput
		}
		if _, err := s.users.FindByUsername(ctx, *input.Username); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Username = *input.Username
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}
	if input.Status != nil {
		if *input.Status != domain.UserActive && *input.Status != domain.UserLocked {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *input.Status
	}

	touch(&user.UpdatedAt, &user.UpdatedBy, input.ActorID)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword is allowed for a Manager or the account owner.
func (s *UserService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	if input.ActorRole != domain.RoleManager && input.ActorID != input.ID {
		return domain.ErrForbidden
	}
	if len(input.Password) < minPasswordLen {
		return domain.ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	touch(&user.UpdatedAt, &user.UpdatedBy, input.ActorID)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", user.ID).Int64("actor_id", input.ActorID).Msg("password changed")
	return nil
}

// Deactivate locks the account. Records are never physically deleted so the
// created_by / updated_by audit trail stays resolvable.
func (s *UserService) Deactivate(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return domain.ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Status = domain.UserLocked
	touch(&user.UpdatedAt, &user.UpdatedBy, actorID)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Int64("actor_id", actorID).Msg("user deactivated")
	return nil
}

// touch stamps the audit columns for a mutation.
func touch(updatedAt **time.Time, updatedBy **int64, actorID int64) {
	now := time.Now().UTC()
	*updatedAt = &now
	if actorID != 0 {
		id := actorID
		*updatedBy = &id
	}
}

// normalizePage clamps paging parameters to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}
