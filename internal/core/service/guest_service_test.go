package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

func newTestGuestService() (*GuestService, *memGuestRepo) {
	repo := &memGuestRepo{items: make(map[int64]*domain.Guest)}
	return NewGuestService(repo, zerolog.Nop()), repo
}

func seedGuest(t *testing.T, repo *memGuestRepo, id int64, name, phone, email string) {
	t.Helper()
	if _, err := repo.Create(context.Background(), &domain.Guest{ID: id, Name: name, Phone: phone, Email: email}); err != nil {
		t.Fatalf("seed guest failed: %v", err)
	}
}

func TestGuestService_Create_ContactConflicts(t *testing.T) {
	svc, repo := newTestGuestService()
	seedGuest(t, repo, 1, "John Doe", "555-0100", "john@example.com")

	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{
		Name: "Impostor", Phone: "555-0100", ActorID: 1,
	}); err != domain.ErrGuestExists {
		t.Fatalf("expected ErrGuestExists for duplicate phone, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{
		Name: "Impostor", Email: "john@example.com", ActorID: 1,
	}); err != domain.ErrGuestExists {
		t.Fatalf("expected ErrGuestExists for duplicate email, got %v", err)
	}

	// Empty contact fields never conflict.
	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{Name: "Anon A", ActorID: 1}); err != nil {
		t.Fatalf("create without contacts failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{Name: "Anon B", ActorID: 1}); err != nil {
		t.Fatalf("second create without contacts failed: %v", err)
	}
}

func TestGuestService_Create_Validation(t *testing.T) {
	svc, _ := newTestGuestService()

	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{Name: ""}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	bad := domain.Gender("Robot")
	if _, err := svc.Create(context.Background(), ports.CreateGuestInput{Name: "X", Gender: &bad}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad gender, got %v", err)
	}
}

func TestGuestService_Update_KeepsOwnContacts(t *testing.T) {
	svc, repo := newTestGuestService()
	seedGuest(t, repo, 1, "John Doe", "555-0100", "john@example.com")
	seedGuest(t, repo, 2, "Jane Roe", "555-0200", "jane@example.com")

	// Re-submitting the guest's own phone is not a conflict.
	name := "John Q. Doe"
	updated, err := svc.Update(context.Background(), ports.UpdateGuestInput{
		ID: 1, Name: &name, ActorID: 1,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != name || updated.Phone != "555-0100" {
		t.Fatalf("unexpected guest after update: %+v", updated)
	}

	// Taking another guest's phone is.
	stolen := "555-0200"
	if _, err := svc.Update(context.Background(), ports.UpdateGuestInput{
		ID: 1, Phone: &stolen, ActorID: 1,
	}); err != domain.ErrGuestExists {
		t.Fatalf("expected ErrGuestExists, got %v", err)
	}
}

func TestGuestService_SearchByName(t *testing.T) {
	svc, repo := newTestGuestService()
	seedGuest(t, repo, 1, "John Doe", "", "")
	seedGuest(t, repo, 2, "Johanna Smith", "", "")
	seedGuest(t, repo, 3, "Alice Munro", "", "")

	found, err := svc.SearchByName(context.Background(), "joh")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}

	if _, err := svc.SearchByName(context.Background(), ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty query, got %v", err)
	}
}
