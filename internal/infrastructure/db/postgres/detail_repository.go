package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hotelworks/hms/internal/core/domain"
)

const detailColumns = `id, booking_id, type, service_id, issued_at, description,
	quantity, unit_price, discount_amount, amount, created_at, created_by`

// BookingDetailRepository persists bill lines in the booking_details table.
type BookingDetailRepository struct {
	db *sqlx.DB
}

func NewBookingDetailRepository(db *sqlx.DB) *BookingDetailRepository {
	return &BookingDetailRepository{db: db}
}

func (r *BookingDetailRepository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.BookingDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM booking_details WHERE booking_id = $1 ORDER BY issued_at, id`

	details := []*domain.BookingDetail{}
	if err := r.db.SelectContext(ctx, &details, query, bookingID); err != nil {
		return nil, fmt.Errorf("list booking details: %w", err)
	}
	return details, nil
}

func (r *BookingDetailRepository) Create(ctx context.Context, d *domain.BookingDetail) (*domain.BookingDetail, error) {
	query := `
		INSERT INTO booking_details (booking_id, type, service_id, issued_at, description,
			quantity, unit_price, discount_amount, amount, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		d.BookingID, d.Type, d.ServiceID, d.IssuedAt, d.Description,
		d.Quantity, d.UnitPrice, d.DiscountAmount, d.Amount,
		d.CreatedAt, d.CreatedBy,
	).Scan(&d.ID)
	if err != nil {
		return nil, fmt.Errorf("insert booking detail: %w", err)
	}
	return d, nil
}

func (r *BookingDetailRepository) Delete(ctx context.Context, bookingID, detailID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM booking_details WHERE id = $1 AND booking_id = $2`, detailID, bookingID)
	if err != nil {
		return fmt.Errorf("delete booking detail: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDetailNotFound
	}
	return nil
}

func (r *BookingDetailRepository) SumAmount(ctx context.Context, bookingID int64) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM booking_details WHERE booking_id = $1`
	if err := r.db.GetContext(ctx, &sum, query, bookingID); err != nil {
		return 0, fmt.Errorf("sum booking details: %w", err)
	}
	return sum, nil
}
