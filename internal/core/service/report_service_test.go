package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

type stubReportRepo struct {
	summary *ports.RevenueSummary
	rows    []ports.RevenueRow
}

func (r *stubReportRepo) Summary(_ context.Context, _, _ time.Time) (*ports.RevenueSummary, error) {
	return r.summary, nil
}

func (r *stubReportRepo) RevenueByRoomType(_ context.Context, _, _ time.Time) ([]ports.RevenueRow, error) {
	return r.rows, nil
}

func (r *stubReportRepo) RevenueByService(_ context.Context, _, _ time.Time) ([]ports.RevenueRow, error) {
	return r.rows, nil
}

func (r *stubReportRepo) GuestNationality(_ context.Context, _, _ time.Time) ([]ports.DistributionRow, error) {
	return nil, nil
}

func (r *stubReportRepo) BookingsPerDay(_ context.Context, _, _ time.Time) ([]ports.DailyCount, error) {
	return nil, nil
}

func TestReportService_Summary(t *testing.T) {
	repo := &stubReportRepo{summary: &ports.RevenueSummary{RoomRevenue: 700, ServiceRevenue: 300, GuestCount: 12}}
	svc := NewReportService(repo, zerolog.Nop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	result, err := svc.Summary(context.Background(), from, to)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if result.TotalRevenue != 1000 || result.TotalGuests != 12 {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.Currency != "VND" {
		t.Fatalf("unexpected currency: %s", result.Currency)
	}
}

func TestReportService_RangeValidation(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, zerolog.Nop())
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		from, to time.Time
	}{
		{"zero from", time.Time{}, from},
		{"zero to", from, time.Time{}},
		{"backwards", from, from.AddDate(0, 0, -1)},
		{"equal", from, from},
		{"too wide", from, from.AddDate(2, 0, 0)},
	}
	for _, tc := range cases {
		if _, err := svc.Summary(context.Background(), tc.from, tc.to); err != domain.ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestReportService_BreakdownPercentages(t *testing.T) {
	repo := &stubReportRepo{rows: []ports.RevenueRow{
		{Name: "Standard", Revenue: 750},
		{Name: "Suite", Revenue: 250},
	}}
	svc := NewReportService(repo, zerolog.Nop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.RevenueByRoomType(context.Background(), from, from.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if result.Total != 1000 {
		t.Fatalf("unexpected total: %v", result.Total)
	}
	if result.Items[0].Percent != 75 || result.Items[1].Percent != 25 {
		t.Fatalf("unexpected shares: %+v", result.Items)
	}
}

func TestReportService_BreakdownEmpty(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, zerolog.Nop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.RevenueByService(context.Background(), from, from.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", result)
	}
}
