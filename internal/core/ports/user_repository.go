package ports

import (
	"context"
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

// UserListFilter carries query parameters for listing users.
type UserListFilter struct {
	// Query is a partial, case-insensitive match on username.
	Query string
	Page  int
	Limit int
}

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns a page of users and the total match count.
	List(ctx context.Context, filter UserListFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	// Count returns the total number of accounts, used for the
	// first-user bootstrap rule.
	Count(ctx context.Context) (int64, error)
	RecordLogin(ctx context.Context, id int64, at time.Time) error
}
