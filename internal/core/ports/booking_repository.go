package ports

import (
	"context"
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

// BookingHistoryFilter carries the query parameters of the history listing.
// Text fields do partial case-insensitive matching.
type BookingHistoryFilter struct {
	BookingNo     string
	ChargeType    *domain.ChargeType
	CheckinFrom   *time.Time
	CheckinTo     *time.Time
	CheckoutFrom  *time.Time
	CheckoutTo    *time.Time
	RoomID        *int64
	RoomName      string
	RoomTypeID    *int64
	RoomTypeName  string
	GuestID       *int64
	GuestName     string
	Status        *domain.BookingStatus
	PaymentStatus *domain.PaymentStatus
	Notes         string
	Page          int
	Limit         int
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// HasOverlap reports whether an open booking (Reserved or CheckedIn)
	// for the room overlaps [checkin, checkout). A nil checkout means an
	// open-ended stay. excludeID skips one booking, for updates.
	HasOverlap(ctx context.Context, roomID int64, checkin time.Time, checkout *time.Time, excludeID int64) (bool, error)
	// MaxBookingNo returns the highest assigned booking number with the
	// given prefix, or "" when none exists.
	MaxBookingNo(ctx context.Context, prefix string) (string, error)
	// ListToday returns bookings whose stay touches the current day.
	ListToday(ctx context.Context, page, limit int) ([]*domain.Booking, int64, error)
	ListHistory(ctx context.Context, filter BookingHistoryFilter) ([]*domain.Booking, int64, error)
	// Delete fails with domain.ErrBookingHasPayments while payments exist.
	Delete(ctx context.Context, id int64) error
}

type BookingDetailRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.BookingDetail, error)
	Create(ctx context.Context, d *domain.BookingDetail) (*domain.BookingDetail, error)
	Delete(ctx context.Context, bookingID, detailID int64) error
	SumAmount(ctx context.Context, bookingID int64) (float64, error)
}

type PaymentRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, bookingID, paymentID int64) error
	SumAmount(ctx context.Context, bookingID int64) (float64, error)
}
