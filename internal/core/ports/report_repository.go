package ports

import (
	"context"
	"time"
)

// RevenueSummary aggregates settled revenue over a date range.
type RevenueSummary struct {
	RoomRevenue    float64
	ServiceRevenue float64
	GuestCount     int64
}

// RevenueRow is one named slice of a revenue breakdown.
type RevenueRow struct {
	Name    string
	Revenue float64
}

// DistributionRow is a count bucketed by label (e.g. nationality).
type DistributionRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DailyCount is the number of bookings created on one day.
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// ReportRepository runs the SQL aggregation behind the reports endpoints.
type ReportRepository interface {
	Summary(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
	RevenueByRoomType(ctx context.Context, from, to time.Time) ([]RevenueRow, error)
	RevenueByService(ctx context.Context, from, to time.Time) ([]RevenueRow, error)
	GuestNationality(ctx context.Context, from, to time.Time) ([]DistributionRow, error)
	BookingsPerDay(ctx context.Context, from, to time.Time) ([]DailyCount, error)
}
