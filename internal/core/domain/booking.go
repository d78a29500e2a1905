package domain

import "time"

// ChargeType selects how a stay is billed.
type ChargeType string

const (
	ChargeByHour  ChargeType = "Hour"
	ChargeByNight ChargeType = "Night"
)

func (c ChargeType) Valid() bool {
	return c == ChargeByHour || c == ChargeByNight
}

// BookingStatus is the lifecycle state of a stay.
type BookingStatus string

const (
	BookingReserved   BookingStatus = "Reserved"
	BookingCheckedIn  BookingStatus = "CheckedIn"
	BookingCheckedOut BookingStatus = "CheckedOut"
	BookingCancelled  BookingStatus = "Cancelled"
	BookingNoShow     BookingStatus = "NoShow"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingReserved:  {BookingCheckedIn, BookingCancelled, BookingNoShow},
	BookingCheckedIn: {BookingCheckedOut},
}

// CanTransitionTo reports whether moving from s to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether the booking may still be modified (details and
// payments added, fields changed).
func (s BookingStatus) Editable() bool {
	return s == BookingReserved || s == BookingCheckedIn
}

// PaymentStatus summarises how much of the bill has been settled.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// Booking is the aggregate root of a stay.
type Booking struct {
	ID             int64         `json:"id" db:"id"`
	BookingNo      string        `json:"booking_no" db:"booking_no"`
	ChargeType     ChargeType    `json:"charge_type" db:"charge_type"`
	Checkin        time.Time     `json:"checkin" db:"checkin"`
	Checkout       *time.Time    `json:"checkout,omitempty" db:"checkout"`
	RoomID         int64         `json:"room_id" db:"room_id"`
	RoomTypeID     int64         `json:"room_type_id" db:"room_type_id"`
	PrimaryGuestID int64         `json:"primary_guest_id" db:"primary_guest_id"`
	NumAdults      int           `json:"num_adults" db:"num_adults"`
	NumChildren    int           `json:"num_children" db:"num_children"`
	Status         BookingStatus `json:"status" db:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status" db:"payment_status"`
	Notes          string        `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	CreatedBy      *int64        `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy      *int64        `json:"updated_by,omitempty" db:"updated_by"`
}

// DetailType classifies a billed line item.
type DetailType string

const (
	DetailRoom       DetailType = "Room"
	DetailService    DetailType = "Service"
	DetailFee        DetailType = "Fee"
	DetailAdjustment DetailType = "Adjustment"
)

func (t DetailType) Valid() bool {
	switch t {
	case DetailRoom, DetailService, DetailFee, DetailAdjustment:
		return true
	}
	return false
}

// BookingDetail is a single line on the bill. Service lines must reference a
// catalog service; Amount = Quantity*UnitPrice - DiscountAmount.
type BookingDetail struct {
	ID             int64      `json:"id" db:"id"`
	BookingID      int64      `json:"booking_id" db:"booking_id"`
	Type           DetailType `json:"type" db:"type"`
	ServiceID      *int64     `json:"service_id,omitempty" db:"service_id"`
	IssuedAt       time.Time  `json:"issued_at" db:"issued_at"`
	Description    string     `json:"description,omitempty" db:"description"`
	Quantity       float64    `json:"quantity" db:"quantity"`
	UnitPrice      float64    `json:"unit_price" db:"unit_price"`
	DiscountAmount float64    `json:"discount_amount" db:"discount_amount"`
	Amount         float64    `json:"amount" db:"amount"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CreatedBy      *int64     `json:"created_by,omitempty" db:"created_by"`
}

// PaymentMethod is the settlement channel.
type PaymentMethod string

const (
	PayCash  PaymentMethod = "Cash"
	PayCard  PaymentMethod = "Card"
	PayOther PaymentMethod = "Other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayOther:
		return true
	}
	return false
}

// Payment records money received against a booking.
type Payment struct {
	ID          int64         `json:"id" db:"id"`
	BookingID   int64         `json:"booking_id" db:"booking_id"`
	PaidAt      time.Time     `json:"paid_at" db:"paid_at"`
	Method      PaymentMethod `json:"payment_method" db:"payment_method"`
	ReferenceNo string        `json:"reference_no,omitempty" db:"reference_no"`
	Amount      float64       `json:"amount" db:"amount"`
	PayerName   string        `json:"payer_name,omitempty" db:"payer_name"`
	Notes       string        `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	CreatedBy   *int64        `json:"created_by,omitempty" db:"created_by"`
}
