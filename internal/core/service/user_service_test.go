package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

func newTestUserService() (*UserService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewUserService(repo, syncHasher{}, zerolog.Nop()), repo
}

func seedUser(t *testing.T, svc *UserService, username string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: username, Password: "s3cret1", Role: role, ActorID: 1,
	})
	if err != nil {
		t.Fatalf("seed user %s failed: %v", username, err)
	}
	return user
}

func TestUserService_Create(t *testing.T) {
	svc, _ := newTestUserService()

	user := seedUser(t, svc, "alice", domain.RoleReceptionist)
	if user.Status != domain.UserActive {
		t.Fatalf("expected Active, got %s", user.Status)
	}
	if user.CreatedBy == nil || *user.CreatedBy != 1 {
		t.Fatalf("expected created_by set, got %+v", user.CreatedBy)
	}

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice", Password: "s3cret1", Role: domain.RoleManager, ActorID: 1,
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "bob", Password: "s3cret1", Role: "Janitor", ActorID: 1,
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, _ := newTestUserService()
	user := seedUser(t, svc, "alice", domain.RoleReceptionist)
	seedUser(t, svc, "bob", domain.RoleAccountant)

	role := domain.RoleAccountant
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: user.ID, Role: &role, ActorID: 1,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAccountant {
		t.Fatalf("role not updated: %s", updated.Role)
	}

	taken := "bob"
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: user.ID, Username: &taken, ActorID: 1,
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists on rename collision, got %v", err)
	}
}

func TestUserService_ChangePassword_OwnerOrManager(t *testing.T) {
	svc, repo := newTestUserService()
	user := seedUser(t, svc, "alice", domain.RoleReceptionist)

	// Owner may change their own password.
	if err := svc.ChangePassword(context.Background(), ports.ChangePasswordInput{
		ID: user.ID, Password: "newpass1", ActorID: user.ID, ActorRole: domain.RoleReceptionist,
	}); err != nil {
		t.Fatalf("owner change failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}

	// A manager may change anyone's.
	if err := svc.ChangePassword(context.Background(), ports.ChangePasswordInput{
		ID: user.ID, Password: "another1", ActorID: 99, ActorRole: domain.RoleManager,
	}); err != nil {
		t.Fatalf("manager change failed: %v", err)
	}

	// Another non-manager may not.
	if err := svc.ChangePassword(context.Background(), ports.ChangePasswordInput{
		ID: user.ID, Password: "another1", ActorID: 99, ActorRole: domain.RoleAccountant,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Deactivate(t *testing.T) {
	svc, repo := newTestUserService()
	user := seedUser(t, svc, "alice", domain.RoleReceptionist)

	if err := svc.Deactivate(context.Background(), user.ID, user.ID); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for self-deactivation, got %v", err)
	}
	if err := svc.Deactivate(context.Background(), user.ID, 99); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Status != domain.UserLocked {
		t.Fatalf("expected Locked, got %s", stored.Status)
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-1, -5, 1, 20},
		{3, 50, 3, 50},
		{1, 1000, 1, 200},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("normalizePage(%d, %d) = %d, %d; want %d, %d",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
