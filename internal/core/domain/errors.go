package domain

import "errors"

// Auth failures. All are recoverable-by-caller conditions; the HTTP layer
// maps them to status codes in the central error handler.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserLocked         = errors.New("user account locked")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

var (
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomTypeExists   = errors.New("room type already exists")
	ErrRoomTypeInUse    = errors.New("room type still referenced by rooms")
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room already exists")
	ErrRoomInUse    = errors.New("room still referenced by bookings")
)

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrGuestExists   = errors.New("guest contact already registered")
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRoomUnavailable    = errors.New("room already booked for that period")
	ErrOccupancyExceeded  = errors.New("occupancy exceeds room type maximum")
	ErrBookingNotEditable = errors.New("booking is no longer editable")
	ErrBookingHasPayments = errors.New("booking has recorded payments")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrDetailNotFound     = errors.New("booking detail not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)
