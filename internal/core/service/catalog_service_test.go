package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

func newTestCatalogService() (*CatalogService, *memCatalogRepo) {
	repo := &memCatalogRepo{items: map[int64]*domain.Service{
		1: {ID: 1, Name: "Laundry", Unit: "kg", Price: 5, Status: domain.ServiceActive},
	}}
	return NewCatalogService(repo, zerolog.Nop()), repo
}

func TestCatalogService_Create(t *testing.T) {
	svc, _ := newTestCatalogService()

	created, err := svc.Create(context.Background(), ports.CreateServiceInput{
		Name: "Minibar", Unit: "item", Price: 3.5, ActorID: 1,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.ServiceActive {
		t.Fatalf("expected Active, got %s", created.Status)
	}

	cases := []ports.CreateServiceInput{
		{Name: "", Unit: "item", Price: 1},
		{Name: "Spa", Unit: "", Price: 1},
		{Name: "Spa", Unit: "hour", Price: -1},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestCatalogService_ChangePrice(t *testing.T) {
	svc, repo := newTestCatalogService()

	updated, err := svc.ChangePrice(context.Background(), 1, 7.5, 2)
	if err != nil {
		t.Fatalf("change price failed: %v", err)
	}
	if updated.Price != 7.5 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	stored, _ := repo.FindByID(context.Background(), 1)
	if stored.Price != 7.5 || stored.UpdatedBy == nil || *stored.UpdatedBy != 2 {
		t.Fatalf("change not persisted: %+v", stored)
	}

	if _, err := svc.ChangePrice(context.Background(), 1, -2, 2); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
	if _, err := svc.ChangePrice(context.Background(), 42, 5, 2); err != domain.ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogService_Update_Status(t *testing.T) {
	svc, _ := newTestCatalogService()

	status := domain.ServiceInactive
	updated, err := svc.Update(context.Background(), ports.UpdateServiceInput{
		ID: 1, Status: &status, ActorID: 2,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.ServiceInactive {
		t.Fatalf("status not updated: %s", updated.Status)
	}

	bad := domain.ServiceStatus("Retired")
	if _, err := svc.Update(context.Background(), ports.UpdateServiceInput{
		ID: 1, Status: &bad,
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
