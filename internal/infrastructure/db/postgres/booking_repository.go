package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

const bookingColumns = `id, booking_no, charge_type, checkin, checkout, room_id,
	room_type_id, primary_guest_id, num_adults, num_children, status,
	payment_status, notes, created_at, created_by, updated_at, updated_by`

// BookingRepository persists stays in the bookings table.
type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query := `
		INSERT INTO bookings (booking_no, charge_type, checkin, checkout, room_id,
			room_type_id, primary_guest_id, num_adults, num_children, status,
			payment_status, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		b.BookingNo, b.ChargeType, b.Checkin, b.Checkout, b.RoomID,
		b.RoomTypeID, b.PrimaryGuestID, b.NumAdults, b.NumChildren, b.Status,
		b.PaymentStatus, b.Notes, b.CreatedAt, b.CreatedBy,
	).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
		UPDATE bookings
		SET charge_type = $1, checkin = $2, checkout = $3, room_id = $4,
		    room_type_id = $5, primary_guest_id = $6, num_adults = $7,
		    num_children = $8, status = $9, payment_status = $10, notes = $11,
		    updated_at = $12, updated_by = $13
		WHERE id = $14`

	res, err := r.db.ExecContext(ctx, query,
		b.ChargeType, b.Checkin, b.Checkout, b.RoomID,
		b.RoomTypeID, b.PrimaryGuestID, b.NumAdults,
		b.NumChildren, b.Status, b.PaymentStatus, b.Notes,
		b.UpdatedAt, b.UpdatedBy, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) HasOverlap(ctx context.Context, roomID int64, checkin time.Time, checkout *time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND id <> $2
			  AND status IN ('Reserved', 'CheckedIn')
			  AND ($3::timestamptz IS NULL OR checkin < $3)
			  AND (checkout IS NULL OR checkout > $4)
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, roomID, excludeID, checkout, checkin); err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) MaxBookingNo(ctx context.Context, prefix string) (string, error) {
	var no sql.NullString
	query := `SELECT MAX(booking_no) FROM bookings WHERE booking_no LIKE $1 || '%'`
	if err := r.db.GetContext(ctx, &no, query, prefix); err != nil {
		return "", fmt.Errorf("max booking no: %w", err)
	}
	return no.String, nil
}

func (r *BookingRepository) ListToday(ctx context.Context, pageNum, limit int) ([]*domain.Booking, int64, error) {
	// A booking touches today when its stay window includes any part of the
	// current day, or it was created today.
	where := `
		WHERE (checkin < CURRENT_DATE + INTERVAL '1 day'
		       AND (checkout IS NULL OR checkout >= CURRENT_DATE)
		       AND status IN ('Reserved', 'CheckedIn'))
		   OR created_at >= CURRENT_DATE`

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings `+where); err != nil {
		return nil, 0, fmt.Errorf("count today bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY checkin %s`,
		bookingColumns, where, page(pageNum, limit))

	bookings := []*domain.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, 0, fmt.Errorf("list today bookings: %w", err)
	}
	return bookings, total, nil
}

func (r *BookingRepository) ListHistory(ctx context.Context, filter ports.BookingHistoryFilter) ([]*domain.Booking, int64, error) {
	var b whereBuilder
	if filter.BookingNo != "" {
		b.like("bk.booking_no", filter.BookingNo)
	}
	if filter.ChargeType != nil {
		b.add("bk.charge_type = $%d", *filter.ChargeType)
	}
	if filter.CheckinFrom != nil {
		b.add("bk.checkin >= $%d", *filter.CheckinFrom)
	}
	if filter.CheckinTo != nil {
		b.add("bk.checkin <= $%d", *filter.CheckinTo)
	}
	if filter.CheckoutFrom != nil {
		b.add("bk.checkout >= $%d", *filter.CheckoutFrom)
	}
	if filter.CheckoutTo != nil {
		b.add("bk.checkout <= $%d", *filter.CheckoutTo)
	}
	if filter.RoomID != nil {
		b.add("bk.room_id = $%d", *filter.RoomID)
	}
	if filter.RoomName != "" {
		b.like("r.name", filter.RoomName)
	}
	if filter.RoomTypeID != nil {
		b.add("bk.room_type_id = $%d", *filter.RoomTypeID)
	}
	if filter.RoomTypeName != "" {
		b.like("rt.name", filter.RoomTypeName)
	}
	if filter.GuestID != nil {
		b.add("bk.primary_guest_id = $%d", *filter.GuestID)
	}
	if filter.GuestName != "" {
		b.like("g.name", filter.GuestName)
	}
	if filter.Status != nil {
		b.add("bk.status = $%d", *filter.Status)
	}
	if filter.PaymentStatus != nil {
		b.add("bk.payment_status = $%d", *filter.PaymentStatus)
	}
	if filter.Notes != "" {
		b.like("bk.notes", filter.Notes)
	}

	from := `
		FROM bookings bk
		JOIN rooms r ON r.id = bk.room_id
		JOIN room_types rt ON rt.id = bk.room_type_id
		JOIN guests g ON g.id = bk.primary_guest_id
		` + b.clause()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) `+from, b.args...); err != nil {
		return nil, 0, fmt.Errorf("count booking history: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY bk.checkin DESC %s`,
		prefixList("bk", bookingColumns), from, page(filter.Page, filter.Limit))

	bookings := []*domain.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("list booking history: %w", err)
	}
	return bookings, total, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	var hasPayments bool
	check := `SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1)`
	if err := r.db.GetContext(ctx, &hasPayments, check, id); err != nil {
		return fmt.Errorf("check booking payments: %w", err)
	}
	if hasPayments {
		return domain.ErrBookingHasPayments
	}

	// Details cascade with the booking.
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
