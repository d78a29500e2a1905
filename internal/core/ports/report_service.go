package ports

import (
	"context"
	"time"
)

// SummaryResult is the top-line revenue view.
type SummaryResult struct {
	TotalRevenue   float64 `json:"total_revenue"`
	RoomRevenue    float64 `json:"room_revenue"`
	ServiceRevenue float64 `json:"service_revenue"`
	TotalGuests    int64   `json:"total_guests"`
	Currency       string  `json:"currency"`
}

// BreakdownItem is a named revenue slice with its share of the total.
type BreakdownItem struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Percent float64 `json:"percent"`
}

type BreakdownResult struct {
	Total float64         `json:"total"`
	Items []BreakdownItem `json:"items"`
}

type ReportService interface {
	Summary(ctx context.Context, from, to time.Time) (*SummaryResult, error)
	RevenueByRoomType(ctx context.Context, from, to time.Time) (*BreakdownResult, error)
	RevenueByService(ctx context.Context, from, to time.Time) (*BreakdownResult, error)
	GuestNationality(ctx context.Context, from, to time.Time) ([]DistributionRow, error)
	BookingsPerDay(ctx context.Context, from, to time.Time) ([]DailyCount, error)
}
