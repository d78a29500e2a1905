package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hotelworks/hms/internal/core/ports"
)

// ReportRepository runs revenue and occupancy aggregations. Revenue numbers
// come from bill lines of checked-out bookings inside the range.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Summary(ctx context.Context, from, to time.Time) (*ports.RevenueSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(d.amount) FILTER (WHERE d.type = 'Room'), 0)  AS room_revenue,
			COALESCE(SUM(d.amount) FILTER (WHERE d.type <> 'Room'), 0) AS service_revenue,
			COUNT(DISTINCT b.primary_guest_id)                         AS guest_count
		FROM bookings b
		LEFT JOIN booking_details d ON d.booking_id = b.id
		WHERE b.status = 'CheckedOut'
		  AND b.checkout >= $1 AND b.checkout < $2`

	var summary ports.RevenueSummary
	err := r.db.QueryRowxContext(ctx, query, from, to).
		Scan(&summary.RoomRevenue, &summary.ServiceRevenue, &summary.GuestCount)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}
	return &summary, nil
}

func (r *ReportRepository) RevenueByRoomType(ctx context.Context, from, to time.Time) ([]ports.RevenueRow, error) {
	query := `
		SELECT rt.name, COALESCE(SUM(d.amount), 0) AS revenue
		FROM bookings b
		JOIN room_types rt ON rt.id = b.room_type_id
		LEFT JOIN booking_details d ON d.booking_id = b.id
		WHERE b.status = 'CheckedOut'
		  AND b.checkout >= $1 AND b.checkout < $2
		GROUP BY rt.name
		ORDER BY revenue DESC`

	return r.revenueRows(ctx, query, from, to)
}

func (r *ReportRepository) RevenueByService(ctx context.Context, from, to time.Time) ([]ports.RevenueRow, error) {
	query := `
		SELECT s.name, COALESCE(SUM(d.amount), 0) AS revenue
		FROM booking_details d
		JOIN services s ON s.id = d.service_id
		JOIN bookings b ON b.id = d.booking_id
		WHERE d.type = 'Service'
		  AND b.status = 'CheckedOut'
		  AND b.checkout >= $1 AND b.checkout < $2
		GROUP BY s.name
		ORDER BY revenue DESC`

	return r.revenueRows(ctx, query, from, to)
}

func (r *ReportRepository) revenueRows(ctx context.Context, query string, from, to time.Time) ([]ports.RevenueRow, error) {
	rows, err := r.db.QueryxContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue breakdown: %w", err)
	}
	defer rows.Close()

	results := []ports.RevenueRow{}
	for rows.Next() {
		var row ports.RevenueRow
		if err := rows.Scan(&row.Name, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *ReportRepository) GuestNationality(ctx context.Context, from, to time.Time) ([]ports.DistributionRow, error) {
	query := `
		SELECT COALESCE(NULLIF(g.nationality, ''), 'Unknown') AS label,
		       COUNT(DISTINCT b.primary_guest_id)             AS count
		FROM bookings b
		JOIN guests g ON g.id = b.primary_guest_id
		WHERE b.checkin >= $1 AND b.checkin < $2
		  AND b.status NOT IN ('Cancelled', 'NoShow')
		GROUP BY label
		ORDER BY count DESC`

	rows, err := r.db.QueryxContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("guest nationality: %w", err)
	}
	defer rows.Close()

	results := []ports.DistributionRow{}
	for rows.Next() {
		var row ports.DistributionRow
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, fmt.Errorf("scan nationality row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *ReportRepository) BookingsPerDay(ctx context.Context, from, to time.Time) ([]ports.DailyCount, error) {
	query := `
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*) AS count
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY day
		ORDER BY day`

	rows, err := r.db.QueryxContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("bookings per day: %w", err)
	}
	defer rows.Close()

	results := []ports.DailyCount{}
	for rows.Next() {
		var row ports.DailyCount
		if err := rows.Scan(&row.Day, &row.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
