package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.UserListFilter) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for name, u := range r.users {
		if u.ID == user.ID {
			if name != user.Username {
				delete(r.users, name)
			}
			r.users[user.Username] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) RecordLogin(_ context.Context, id int64, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			t := at
			u.LastLoginAt = &t
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// syncHasher runs bcrypt inline so tests need no worker pool.
type syncHasher struct{}

func (syncHasher) Hash(_ context.Context, password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}

func (syncHasher) Compare(_ context.Context, hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) Blocked(_ context.Context, username string) (bool, error) {
	return t.failures[username] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	delete(t.failures, username)
	return nil
}

func newTestAuthService(repo ports.UserRepository, throttle ports.LoginThrottle, ttl time.Duration) *AuthService {
	return NewAuthService(repo, syncHasher{}, throttle, "secret", ttl, zerolog.Nop())
}

func mustRegister(t *testing.T, svc *AuthService, username, password string, role domain.Role, actorID int64) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Password: password,
		Role:     role,
		ActorID:  actorID,
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
	return user
}

func TestAuthService_Register_Bootstrap(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	user := mustRegister(t, svc, "alice", "s3cret1", domain.RoleManager, 0)
	if user.PasswordHash == "s3cret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Status != domain.UserActive {
		t.Fatalf("expected Active status, got %s", user.Status)
	}
}

func TestAuthService_Register_OnlyManagerAfterBootstrap(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	manager := mustRegister(t, svc, "alice", "s3cret1", domain.RoleManager, 0)
	reception := mustRegister(t, svc, "bob", "s3cret1", domain.RoleReceptionist, manager.ID)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Password: "s3cret1", Role: domain.RoleAccountant,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for anonymous register, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Password: "s3cret1", Role: domain.RoleAccountant, ActorID: reception.ID,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-manager actor, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	cases := []ports.RegisterInput{
		{Username: "ab", Password: "s3cret1", Role: domain.RoleManager},
		{Username: "alice", Password: "short", Role: domain.RoleManager},
		{Username: "alice", Password: "s3cret1", Role: "Janitor"},
	}
	for _, input := range cases {
		if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	manager := mustRegister(t, svc, "alice", "s3cret1", domain.RoleManager, 0)
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "other12", Role: domain.RoleReceptionist, ActorID: manager.ID,
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Roundtrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	mustRegister(t, svc, "carol", "s3cret1", domain.RoleAccountant, 0)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected LastLoginAt to be set")
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username != "carol" || claims.Role != domain.RoleAccountant || claims.UserID != user.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	mustRegister(t, svc, "dave", "goodpass", domain.RoleReceptionist, 0)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	user := mustRegister(t, svc, "erin", "s3cret1", domain.RoleHousekeeping, 0)
	user.Status = domain.UserLocked
	if err := repo.Update(context.Background(), user); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "erin", "s3cret1"); err != domain.ErrUserLocked {
		t.Fatalf("expected ErrUserLocked, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := newTestAuthService(repo, throttle, time.Hour)

	mustRegister(t, svc, "frank", "s3cret1", domain.RoleReceptionist, 0)

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "frank", "wrong11"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	if _, _, err := svc.Login(context.Background(), "frank", "s3cret1"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsThrottleOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := newTestAuthService(repo, throttle, time.Hour)

	mustRegister(t, svc, "gina", "s3cret1", domain.RoleReceptionist, 0)

	_, _, _ = svc.Login(context.Background(), "gina", "wrong11")
	_, _, _ = svc.Login(context.Background(), "gina", "wrong11")
	if _, _, err := svc.Login(context.Background(), "gina", "s3cret1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.failures["gina"] != 0 {
		t.Fatalf("expected failure counter reset, got %d", throttle.failures["gina"])
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  "alice",
		"uid":  int64(1),
		"role": string(domain.RoleManager),
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_Verify_Tampered(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	mustRegister(t, svc, "alice", "s3cret1", domain.RoleManager, 0)
	token, _, err := svc.Login(context.Background(), "alice", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token+"x"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "not.a.token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	issuer := NewAuthService(repo, syncHasher{}, newStubThrottle(5), "other-secret", time.Hour, zerolog.Nop())
	verifier := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	mustRegister(t, issuer, "alice", "s3cret1", domain.RoleManager, 0)
	token, _, err := issuer.Login(context.Background(), "alice", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for forged token, got %v", err)
	}
}

func TestAuthService_HashesDifferPerUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5), time.Hour)

	manager := mustRegister(t, svc, "alice", "samepass", domain.RoleManager, 0)
	other := mustRegister(t, svc, "bob", "samepass", domain.RoleReceptionist, manager.ID)

	if manager.PasswordHash == other.PasswordHash {
		t.Fatalf("expected distinct hashes for the same password")
	}
	for _, u := range []*domain.User{manager, other} {
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("samepass")); err != nil {
			t.Fatalf("hash for %s does not verify: %v", u.Username, err)
		}
	}
}

func TestAuthService_Authorize(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubThrottle(5), time.Hour)

	cases := []struct {
		role    domain.Role
		cap     domain.Capability
		allowed bool
	}{
		{domain.RoleManager, domain.CapUsersManage, true},
		{domain.RoleManager, domain.CapReportsRead, true},
		{domain.RoleReceptionist, domain.CapBookingsWrite, true},
		{domain.RoleReceptionist, domain.CapBookingsAdmin, false},
		{domain.RoleManager, domain.CapBookingsAdmin, true},
		{domain.RoleReceptionist, domain.CapUsersManage, false},
		{domain.RoleReceptionist, domain.CapReportsRead, false},
		{domain.RoleHousekeeping, domain.CapRoomsStatus, true},
		{domain.RoleHousekeeping, domain.CapBookingsRead, false},
		{domain.RoleAccountant, domain.CapReportsRead, true},
		{domain.RoleAccountant, domain.CapBookingsWrite, false},
		{"Janitor", domain.CapRoomsRead, false},
	}
	for _, tc := range cases {
		err := svc.Authorize(tc.role, tc.cap)
		if tc.allowed && err != nil {
			t.Fatalf("expected %s allowed for %s, got %v", tc.cap, tc.role, err)
		}
		if !tc.allowed && err != domain.ErrForbidden {
			t.Fatalf("expected ErrForbidden for %s/%s, got %v", tc.role, tc.cap, err)
		}
	}
}
