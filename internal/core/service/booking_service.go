package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelworks/hms/internal/api/metrics"
	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

const bookingNoPrefix = "BKG"

// settlementPayer names the system on auto-generated checkout payments.
const settlementPayer = "System"

// BookingService drives the stay lifecycle: reservation, check-in,
// billing lines, payments and final settlement at checkout.
type BookingService struct {
	bookings  ports.BookingRepository
	details   ports.BookingDetailRepository
	payments  ports.PaymentRepository
	rooms     ports.RoomRepository
	roomTypes ports.RoomTypeRepository
	guests    ports.GuestRepository
	catalog   ports.CatalogRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewBookingService(
	bookings ports.BookingRepository,
	details ports.BookingDetailRepository,
	payments ports.PaymentRepository,
	rooms ports.RoomRepository,
	roomTypes ports.RoomTypeRepository,
	guests ports.GuestRepository,
	catalog ports.CatalogRepository,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		details:   details,
		payments:  payments,
		rooms:     rooms,
		roomTypes: roomTypes,
		guests:    guests,
		catalog:   catalog,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *BookingService) Today(ctx context.Context, page, limit int) (*ports.BookingListResult, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.bookings.ListToday(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.BookingListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *BookingService) History(ctx context.Context, filter ports.BookingHistoryFilter) (*ports.BookingListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.bookings.ListHistory(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.BookingListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validateStay(ctx, input.ChargeType, input.Checkin, input.Checkout,
		input.RoomID, input.RoomTypeID, input.PrimaryGuestID,
		input.NumAdults, input.NumChildren, 0, true); err != nil {
		return nil, err
	}

	no, err := s.nextBookingNo(ctx)
	if err != nil {
		return nil, err
	}

	actorID := input.ActorID
	booking := &domain.Booking{
		BookingNo:      no,
		ChargeType:     input.ChargeType,
		Checkin:        input.Checkin,
		Checkout:       input.Checkout,
		RoomID:         input.RoomID,
		RoomTypeID:     input.RoomTypeID,
		PrimaryGuestID: input.PrimaryGuestID,
		NumAdults:      input.NumAdults,
		NumChildren:    input.NumChildren,
		Status:         domain.BookingReserved,
		PaymentStatus:  domain.PaymentUnpaid,
		Notes:          input.Notes,
		CreatedAt:      s.now().UTC(),
		CreatedBy:      &actorID,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(created.ChargeType)).Inc()
	s.logger.Info().
		Str("booking_no", created.BookingNo).
		Int64("room_id", created.RoomID).
		Msg("booking created")
	return created, nil
}

func (s *BookingService) Update(ctx context.Context, input ports.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.Editable() {
		return nil, domain.ErrBookingNotEditable
	}

	if err := s.validateStay(ctx, input.ChargeType, input.Checkin, input.Checkout,
		input.RoomID, input.RoomTypeID, input.PrimaryGuestID,
		input.NumAdults, input.NumChildren, booking.ID, false); err != nil {
		return nil, err
	}

	booking.ChargeType = input.ChargeType
	booking.Checkin = input.Checkin
	booking.Checkout = input.Checkout
	booking.RoomID = input.RoomID
	booking.RoomTypeID = input.RoomTypeID
	booking.PrimaryGuestID = input.PrimaryGuestID
	booking.NumAdults = input.NumAdults
	booking.NumChildren = input.NumChildren
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	touch(&booking.UpdatedAt, &booking.UpdatedBy, input.ActorID)

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) CheckIn(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingCheckedIn {
		return booking, nil
	}
	if !booking.Status.CanTransitionTo(domain.BookingCheckedIn) {
		return nil, domain.ErrInvalidTransition
	}

	booking.Status = domain.BookingCheckedIn
	// The stay is billed from the actual arrival, not the reserved time.
	booking.Checkin = s.now().UTC()
	touch(&booking.UpdatedAt, &booking.UpdatedBy, actorID)
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.setRoomState(ctx, booking.RoomID, domain.RoomOccupied, "", actorID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_no", booking.BookingNo).Msg("guest checked in")
	return booking, nil
}

func (s *BookingService) CheckOut(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(domain.BookingCheckedOut) {
		return nil, domain.ErrInvalidTransition
	}

	billed, err := s.details.SumAmount(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	paid, err := s.payments.SumAmount(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	settlement := "prepaid"
	if remainder := billed - paid; remainder > 0 {
		settlement = "settled"
		p := &domain.Payment{
			BookingID:   booking.ID,
			PaidAt:      s.now().UTC(),
			Method:      domain.PayOther,
			ReferenceNo: booking.BookingNo,
			Amount:      remainder,
			PayerName:   settlementPayer,
			Notes:       "Checkout settlement",
			CreatedAt:   s.now().UTC(),
			CreatedBy:   &actorID,
		}
		if _, err := s.payments.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	booking.Status = domain.BookingCheckedOut
	booking.PaymentStatus = domain.PaymentPaid
	if booking.Checkout == nil {
		booking.Checkout = &now
	}
	touch(&booking.UpdatedAt, &booking.UpdatedBy, actorID)
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.setRoomState(ctx, booking.RoomID, domain.RoomAvailable, domain.RoomDirty, actorID); err != nil {
		return nil, err
	}

	metrics.CheckoutsTotal.WithLabelValues(settlement).Inc()
	s.logger.Info().
		Str("booking_no", booking.BookingNo).
		Float64("billed", billed).
		Float64("paid", paid).
		Msg("guest checked out")
	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	return s.close(ctx, id, actorID, domain.BookingCancelled)
}

func (s *BookingService) MarkNoShow(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	return s.close(ctx, id, actorID, domain.BookingNoShow)
}

// close moves a reservation to a terminal non-stay state.
func (s *BookingService) close(ctx context.Context, id, actorID int64, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	booking.Status = next
	touch(&booking.UpdatedAt, &booking.UpdatedBy, actorID)
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.logger.Info().Str("booking_no", booking.BookingNo).Str("status", string(next)).Msg("booking closed")
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

func (s *BookingService) Details(ctx context.Context, bookingID int64) ([]*domain.BookingDetail, error) {
	if _, err := s.bookings.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.details.ListByBooking(ctx, bookingID)
}

func (s *BookingService) AddDetail(ctx context.Context, input ports.AddDetailInput) (*domain.BookingDetail, error) {
	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.Editable() {
		return nil, domain.ErrBookingNotEditable
	}
	if !input.Type.Valid() || input.Quantity <= 0 || input.UnitPrice < 0 || input.DiscountAmount < 0 {
		return nil, domain.ErrInvalidInput
	}

	description := input.Description
	if input.Type == domain.DetailService {
		if input.ServiceID == nil {
			return nil, domain.ErrInvalidInput
		}
		svc, err := s.catalog.FindByID(ctx, *input.ServiceID)
		if err != nil {
			return nil, err
		}
		if description == "" {
			description = svc.Name
		}
	}

	amount := input.Quantity*input.UnitPrice - input.DiscountAmount
	if amount < 0 {
		return nil, domain.ErrInvalidInput
	}

	actorID := input.ActorID
	detail := &domain.BookingDetail{
		BookingID:      booking.ID,
		Type:           input.Type,
		ServiceID:      input.ServiceID,
		IssuedAt:       s.now().UTC(),
		Description:    description,
		Quantity:       input.Quantity,
		UnitPrice:      input.UnitPrice,
		DiscountAmount: input.DiscountAmount,
		Amount:         amount,
		CreatedAt:      s.now().UTC(),
		CreatedBy:      &actorID,
	}

	created, err := s.details.Create(ctx, detail)
	if err != nil {
		return nil, err
	}
	return created, s.refreshPaymentStatus(ctx, booking)
}

func (s *BookingService) RemoveDetail(ctx context.Context, bookingID, detailID int64) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.Editable() {
		return domain.ErrBookingNotEditable
	}
	if err := s.details.Delete(ctx, bookingID, detailID); err != nil {
		return err
	}
	return s.refreshPaymentStatus(ctx, booking)
}

func (s *BookingService) Payments(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	if _, err := s.bookings.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.payments.ListByBooking(ctx, bookingID)
}

func (s *BookingService) AddPayment(ctx context.Context, input ports.AddPaymentInput) (*domain.Payment, error) {
	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.Editable() {
		return nil, domain.ErrBookingNotEditable
	}
	if !input.Method.Valid() || input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	actorID := input.ActorID
	payment := &domain.Payment{
		BookingID:   booking.ID,
		PaidAt:      s.now().UTC(),
		Method:      input.Method,
		ReferenceNo: input.ReferenceNo,
		Amount:      input.Amount,
		PayerName:   input.PayerName,
		Notes:       input.Notes,
		CreatedAt:   s.now().UTC(),
		CreatedBy:   &actorID,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}
	return created, s.refreshPaymentStatus(ctx, booking)
}

func (s *BookingService) RemovePayment(ctx context.Context, bookingID, paymentID int64) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.Editable() {
		return domain.ErrBookingNotEditable
	}
	if err := s.payments.Delete(ctx, bookingID, paymentID); err != nil {
		return err
	}
	return s.refreshPaymentStatus(ctx, booking)
}

// validateStay checks the structural and relational rules shared by booking
// creation and updates.
func (s *BookingService) validateStay(ctx context.Context, chargeType domain.ChargeType,
	checkin time.Time, checkout *time.Time,
	roomID, roomTypeID, guestID int64,
	numAdults, numChildren int,
	excludeID int64, rejectPast bool) error {

	if !chargeType.Valid() {
		return domain.ErrInvalidInput
	}
	if checkin.IsZero() || numAdults < 1 || numChildren < 0 {
		return domain.ErrInvalidInput
	}
	if checkout != nil && !checkout.After(checkin) {
		return domain.ErrInvalidInput
	}
	if rejectPast && checkin.Before(s.now().UTC().Truncate(24*time.Hour)) {
		return domain.ErrInvalidInput
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.RoomTypeID != roomTypeID {
		return domain.ErrInvalidInput
	}
	roomType, err := s.roomTypes.FindByID(ctx, roomTypeID)
	if err != nil {
		return err
	}
	if _, err := s.guests.FindByID(ctx, guestID); err != nil {
		return err
	}

	if numAdults+numChildren > roomType.MaxOccupancy {
		return domain.ErrOccupancyExceeded
	}
	if room.Status == domain.RoomOutOfService {
		return domain.ErrRoomUnavailable
	}

	overlap, err := s.bookings.HasOverlap(ctx, roomID, checkin, checkout, excludeID)
	if err != nil {
		return err
	}
	if overlap {
		return domain.ErrRoomUnavailable
	}
	return nil
}

// nextBookingNo assigns the next sequential number for the current day,
// formatted BKG<yymmdd><seq>.
func (s *BookingService) nextBookingNo(ctx context.Context) (string, error) {
	prefix := bookingNoPrefix + s.now().UTC().Format("060102")
	last, err := s.bookings.MaxBookingNo(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" && len(last) > len(prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// refreshPaymentStatus recomputes the Unpaid/Partial/Paid flag after details
// or payments change.
func (s *BookingService) refreshPaymentStatus(ctx context.Context, booking *domain.Booking) error {
	billed, err := s.details.SumAmount(ctx, booking.ID)
	if err != nil {
		return err
	}
	paid, err := s.payments.SumAmount(ctx, booking.ID)
	if err != nil {
		return err
	}

	status := domain.PaymentUnpaid
	switch {
	case paid > 0 && paid >= billed && billed > 0:
		status = domain.PaymentPaid
	case paid > 0:
		status = domain.PaymentPartial
	}
	if status == booking.PaymentStatus {
		return nil
	}
	booking.PaymentStatus = status
	return s.bookings.Update(ctx, booking)
}

// setRoomState updates a room's front-desk and optionally housekeeping state.
func (s *BookingService) setRoomState(ctx context.Context, roomID int64, status domain.RoomStatus, hk domain.HousekeepingStatus, actorID int64) error {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return err
	}
	room.Status = status
	if hk != "" {
		room.HousekeepingStatus = hk
	}
	touch(&room.UpdatedAt, &room.UpdatedBy, actorID)
	return s.rooms.Update(ctx, room)
}
