package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/api/metrics"
	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// AuthService implements registration, login, token verification and the
// capability gate. It owns no shared mutable state; every call is
// independent and safe to run concurrently.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a staff account. The very first account may self-register
// with any role; afterwards only a Manager may create accounts.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if len(input.Username) < minUsernameLen || len(input.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		if input.ActorID == 0 {
			return nil, domain.ErrForbidden
		}
		actor, err := s.users.FindByID(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}
		if actor.Role != domain.RoleManager {
			return nil, domain.ErrForbidden
		}
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.UserActive,
		CreatedAt:    now,
	}
	if input.ActorID != 0 {
		actorID := input.ActorID
		user.CreatedBy = &actorID
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login checks credentials and returns a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.Blocked(ctx, username)
	if err != nil {
		// Throttle backend failures must not take logins down with them.
		s.logger.Warn().Err(err).Msg("login throttle unavailable")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.throttle.RecordFailure(ctx, username)
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		_ = s.throttle.RecordFailure(ctx, username)
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Status != domain.UserActive {
		metrics.LoginsTotal.WithLabelValues("locked").Inc()
		return "", nil, domain.ErrUserLocked
	}

	_ = s.throttle.Reset(ctx, username)

	now := time.Now().UTC()
	if err := s.users.RecordLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record login time")
	}
	user.LastLoginAt = &now

	token, err := s.generateToken(user, now)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login")
	return token, user, nil
}

// Verify parses the token, checks the signature and expiry, and returns the
// embedded identity. Expired tokens and malformed or forged tokens fail
// distinctly so the transport layer can pick between re-login and rejection.
func (s *AuthService) Verify(_ context.Context, token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	uid, _ := claims["uid"].(float64)
	role := domain.Role(roleStr)
	if sub == "" || !role.Valid() {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{UserID: int64(uid), Username: sub, Role: role}, nil
}

// Authorize allows or rejects a role against the static capability table.
func (s *AuthService) Authorize(role domain.Role, cap domain.Capability) error {
	if !domain.RoleAllowed(role, cap) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"uid":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
