package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// maxReportRange caps a report query at roughly one year.
const maxReportRange = 370 * 24 * time.Hour

const reportCurrency = "VND"

// ReportService exposes revenue and occupancy aggregations.
type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) Summary(ctx context.Context, from, to time.Time) (*ports.SummaryResult, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	agg, err := s.repo.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &ports.SummaryResult{
		TotalRevenue:   agg.RoomRevenue + agg.ServiceRevenue,
		RoomRevenue:    agg.RoomRevenue,
		ServiceRevenue: agg.ServiceRevenue,
		TotalGuests:    agg.GuestCount,
		Currency:       reportCurrency,
	}, nil
}

func (s *ReportService) RevenueByRoomType(ctx context.Context, from, to time.Time) (*ports.BreakdownResult, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	rows, err := s.repo.RevenueByRoomType(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return breakdown(rows), nil
}

func (s *ReportService) RevenueByService(ctx context.Context, from, to time.Time) (*ports.BreakdownResult, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	rows, err := s.repo.RevenueByService(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return breakdown(rows), nil
}

func (s *ReportService) GuestNationality(ctx context.Context, from, to time.Time) ([]ports.DistributionRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.GuestNationality(ctx, from, to)
}

func (s *ReportService) BookingsPerDay(ctx context.Context, from, to time.Time) ([]ports.DailyCount, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.repo.BookingsPerDay(ctx, from, to)
}

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !to.After(from) {
		return domain.ErrInvalidInput
	}
	if to.Sub(from) > maxReportRange {
		return domain.ErrInvalidInput
	}
	return nil
}

// breakdown computes each row's share of the range total.
func breakdown(rows []ports.RevenueRow) *ports.BreakdownResult {
	var total float64
	for _, r := range rows {
		total += r.Revenue
	}
	result := &ports.BreakdownResult{Total: total, Items: make([]ports.BreakdownItem, 0, len(rows))}
	for _, r := range rows {
		item := ports.BreakdownItem{Name: r.Name, Revenue: r.Revenue}
		if total > 0 {
			item.Percent = r.Revenue / total * 100
		}
		result.Items = append(result.Items, item)
	}
	return result
}
