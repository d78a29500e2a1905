package ports

import (
	"context"

	"github.com/hotelworks/hms/internal/core/domain"
)

// TokenClaims is the verified identity extracted from a bearer token.
type TokenClaims struct {
	UserID   int64
	Username string
	Role     domain.Role
}

// RegisterInput carries a self-registration or admin-created account request.
type RegisterInput struct {
	Username string
	Password string
	Role     domain.Role
	// ActorID is the creating user, zero during bootstrap self-registration.
	ActorID int64
}

// AuthService issues and verifies identity tokens and enforces the
// capability matrix.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify parses and validates a token. Expired and malformed/forged
	// tokens fail with distinct errors so callers can tell re-login apart
	// from rejection.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
	// Authorize allows or rejects a role against a capability.
	Authorize(role domain.Role, cap domain.Capability) error
}

// PasswordHasher derives and checks salted password hashes. Hashing is
// CPU-bound and implementations may queue work onto a fixed pool.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(ctx context.Context, hash, password string) error
}

// LoginThrottle tracks failed login attempts per username.
type LoginThrottle interface {
	// Blocked reports whether the username has exhausted its attempts.
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}
