package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
	ActorID  int64
}

// UpdateUserInput uses nil pointers for fields left unchanged.
type UpdateUserInput struct {
	ID       int64
	Username *string
	Role     *domain.Role
	Status   *domain.UserStatus
	ActorID  int64
}

type ChangePasswordInput struct {
	ID        int64
	Password  string
	ActorID   int64
	ActorRole domain.Role
}

type UserListResult struct {
	Items []*domain.User
	Total int64
	Page  int
	Limit int
}

// UserService covers Manager-only account administration. Accounts are
// deactivated, never deleted.
type UserService interface {
	List(ctx context.Context, filter UserListFilter) (*UserListResult, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// ChangePassword is allowed for Manager or the account owner.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	Deactivate(ctx context.Context, id, actorID int64) error
}
