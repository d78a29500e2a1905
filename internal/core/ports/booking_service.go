package ports

import (
	"context"
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

type CreateBookingInput struct {
	ChargeType     domain.ChargeType
	Checkin        time.Time
	Checkout       *time.Time
	RoomID         int64
	RoomTypeID     int64
	PrimaryGuestID int64
	NumAdults      int
	NumChildren    int
	Notes          string
	ActorID        int64
}

type UpdateBookingInput struct {
	ID             int64
	ChargeType     domain.ChargeType
	Checkin        time.Time
	Checkout       *time.Time
	RoomID         int64
	RoomTypeID     int64
	PrimaryGuestID int64
	NumAdults      int
	NumChildren    int
	Notes          *string
	ActorID        int64
}

type AddDetailInput struct {
	BookingID      int64
	Type           domain.DetailType
	ServiceID      *int64
	Description    string
	Quantity       float64
	UnitPrice      float64
	DiscountAmount float64
	ActorID        int64
}

type AddPaymentInput struct {
	BookingID   int64
	Method      domain.PaymentMethod
	Amount      float64
	ReferenceNo string
	PayerName   string
	Notes       string
	ActorID     int64
}

type BookingListResult struct {
	Items []*domain.Booking
	Total int64
	Page  int
	Limit int
}

// BookingService covers the stay lifecycle from reservation to settlement.
type BookingService interface {
	Today(ctx context.Context, page, limit int) (*BookingListResult, error)
	History(ctx context.Context, filter BookingHistoryFilter) (*BookingListResult, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, input UpdateBookingInput) (*domain.Booking, error)
	// CheckIn marks the booking checked in and the room occupied.
	// Idempotent when the booking is already checked in.
	CheckIn(ctx context.Context, id, actorID int64) (*domain.Booking, error)
	// CheckOut settles the bill: any unpaid remainder becomes an
	// auto-generated payment, the booking is marked Paid and the room
	// freed for housekeeping.
	CheckOut(ctx context.Context, id, actorID int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id, actorID int64) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, id, actorID int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error

	Details(ctx context.Context, bookingID int64) ([]*domain.BookingDetail, error)
	AddDetail(ctx context.Context, input AddDetailInput) (*domain.BookingDetail, error)
	RemoveDetail(ctx context.Context, bookingID, detailID int64) error

	Payments(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
	AddPayment(ctx context.Context, input AddPaymentInput) (*domain.Payment, error)
	RemovePayment(ctx context.Context, bookingID, paymentID int64) error
}
