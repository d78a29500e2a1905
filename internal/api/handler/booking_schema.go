package handler

import (
	"time"

	"github.com/hotelworks/hms/internal/core/domain"
)

// --- Request / Response types ---

type createBookingRequest struct {
	ChargeType     string     `json:"charge_type"      validate:"required,oneof=Hour Night"`
	Checkin        time.Time  `json:"checkin"          validate:"required"`
	Checkout       *time.Time `json:"checkout"`
	RoomID         int64      `json:"room_id"          validate:"required,gt=0"`
	RoomTypeID     int64      `json:"room_type_id"     validate:"required,gt=0"`
	PrimaryGuestID int64      `json:"primary_guest_id" validate:"required,gt=0"`
	NumAdults      int        `json:"num_adults"       validate:"required,gt=0"`
	NumChildren    int        `json:"num_children"     validate:"gte=0"`
	Notes          string     `json:"notes"`
}

type updateBookingRequest struct {
	ChargeType     string     `json:"charge_type"      validate:"required,oneof=Hour Night"`
	Checkin        time.Time  `json:"checkin"          validate:"required"`
	Checkout       *time.Time `json:"checkout"`
	RoomID         int64      `json:"room_id"          validate:"required,gt=0"`
	RoomTypeID     int64      `json:"room_type_id"     validate:"required,gt=0"`
	PrimaryGuestID int64      `json:"primary_guest_id" validate:"required,gt=0"`
	NumAdults      int        `json:"num_adults"       validate:"required,gt=0"`
	NumChildren    int        `json:"num_children"     validate:"gte=0"`
	Notes          *string    `json:"notes"`
}

type addDetailRequest struct {
	Type           string  `json:"type"            validate:"required,oneof=Room Service Fee Adjustment"`
	ServiceID      *int64  `json:"service_id"      validate:"omitempty,gt=0"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"        validate:"required,gt=0"`
	UnitPrice      float64 `json:"unit_price"      validate:"gte=0"`
	DiscountAmount float64 `json:"discount_amount" validate:"gte=0"`
}

type addPaymentRequest struct {
	Method      string  `json:"payment_method" validate:"required,oneof=Cash Card Other"`
	Amount      float64 `json:"amount"         validate:"required,gt=0"`
	ReferenceNo string  `json:"reference_no"`
	PayerName   string  `json:"payer_name"`
	Notes       string  `json:"notes"`
}

type bookingListResponse struct {
	Data       []*domain.Booking  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
