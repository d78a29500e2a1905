package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hotelworks/hms/internal/core/domain"
)

const paymentColumns = `id, booking_id, paid_at, payment_method, reference_no,
	amount, payer_name, notes, created_at, created_by`

// PaymentRepository persists money received in the payments table.
type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY paid_at, id`

	payments := []*domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, bookingID); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (booking_id, paid_at, payment_method, reference_no,
			amount, payer_name, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		p.BookingID, p.PaidAt, p.Method, p.ReferenceNo,
		p.Amount, p.PayerName, p.Notes, p.CreatedAt, p.CreatedBy,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, bookingID, paymentID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM payments WHERE id = $1 AND booking_id = $2`, paymentID, bookingID)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) SumAmount(ctx context.Context, bookingID int64) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = $1`
	if err := r.db.GetContext(ctx, &sum, query, bookingID); err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return sum, nil
}
