package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// BookingHandler exposes the stay lifecycle endpoints.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Today lists bookings whose stay touches the current day.
//
// @Summary      Today's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  bookingListResponse
// @Router       /bookings/today [get]
func (h *BookingHandler) Today(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.bookings.Today(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// History searches past and present bookings against a rich filter set.
//
// @Summary      Booking history
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        booking_no      query  string  false  "Partial booking number"
// @Param        charge_type     query  string  false  "Hour or Night"
// @Param        checkin_from    query  string  false  "Check-in window start"
// @Param        checkin_to      query  string  false  "Check-in window end"
// @Param        checkout_from   query  string  false  "Check-out window start"
// @Param        checkout_to     query  string  false  "Check-out window end"
// @Param        room_id         query  int     false  "Room filter"
// @Param        room_name       query  string  false  "Partial room name"
// @Param        room_type_id    query  int     false  "Room type filter"
// @Param        room_type_name  query  string  false  "Partial room type name"
// @Param        guest_id        query  int     false  "Guest filter"
// @Param        guest_name      query  string  false  "Partial guest name"
// @Param        status          query  string  false  "Booking status"
// @Param        payment_status  query  string  false  "Payment status"
// @Param        notes           query  string  false  "Partial notes match"
// @Success      200  {object}  bookingListResponse
// @Router       /bookings [get]
func (h *BookingHandler) History(c echo.Context) error {
	page, limit := pageParams(c)
	filter := ports.BookingHistoryFilter{
		BookingNo:    c.QueryParam("booking_no"),
		CheckinFrom:  optTime(c, "checkin_from"),
		CheckinTo:    optTime(c, "checkin_to"),
		CheckoutFrom: optTime(c, "checkout_from"),
		CheckoutTo:   optTime(c, "checkout_to"),
		RoomID:       optInt64(c, "room_id"),
		RoomName:     c.QueryParam("room_name"),
		RoomTypeID:   optInt64(c, "room_type_id"),
		RoomTypeName: c.QueryParam("room_type_name"),
		GuestID:      optInt64(c, "guest_id"),
		GuestName:    c.QueryParam("guest_name"),
		Notes:        c.QueryParam("notes"),
		Page:         page,
		Limit:        limit,
	}
	if raw := c.QueryParam("charge_type"); raw != "" {
		ct := domain.ChargeType(raw)
		filter.ChargeType = &ct
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}
	if raw := c.QueryParam("payment_status"); raw != "" {
		status := domain.PaymentStatus(raw)
		filter.PaymentStatus = &status
	}

	result, err := h.bookings.History(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{
		Data:       result.Items,
		Pagination: pagination(result.Total, result.Page, result.Limit),
	})
}

// Get returns one booking.
//
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Create reserves a room for a guest.
//
// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		ChargeType:     domain.ChargeType(req.ChargeType),
		Checkin:        req.Checkin,
		Checkout:       req.Checkout,
		RoomID:         req.RoomID,
		RoomTypeID:     req.RoomTypeID,
		PrimaryGuestID: req.PrimaryGuestID,
		NumAdults:      req.NumAdults,
		NumChildren:    req.NumChildren,
		Notes:          req.Notes,
		ActorID:        actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Update rewrites an editable booking.
//
// @Summary      Update booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Booking ID"
// @Param        body  body  updateBookingRequest  true  "New booking details"
// @Success      200   {object}  domain.Booking
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.Update(c.Request().Context(), ports.UpdateBookingInput{
		ID:             id,
		ChargeType:     domain.ChargeType(req.ChargeType),
		Checkin:        req.Checkin,
		Checkout:       req.Checkout,
		RoomID:         req.RoomID,
		RoomTypeID:     req.RoomTypeID,
		PrimaryGuestID: req.PrimaryGuestID,
		NumAdults:      req.NumAdults,
		NumChildren:    req.NumChildren,
		Notes:          req.Notes,
		ActorID:        actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// CheckIn marks the booking checked in and the room occupied.
//
// @Summary      Check in
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      422  {object}  errorResponse
// @Router       /bookings/{id}/checkin [post]
func (h *BookingHandler) CheckIn(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.CheckIn(c.Request().Context(), id, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// CheckOut settles the bill and frees the room.
//
// @Summary      Check out
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      422  {object}  errorResponse
// @Router       /bookings/{id}/checkout [post]
func (h *BookingHandler) CheckOut(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.CheckOut(c.Request().Context(), id, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Cancel voids a reservation before check-in.
//
// @Summary      Cancel booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      422  {object}  errorResponse
// @Router       /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.Cancel(c.Request().Context(), id, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// MarkNoShow records that the guest never arrived.
//
// @Summary      Mark no-show
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      422  {object}  errorResponse
// @Router       /bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.MarkNoShow(c.Request().Context(), id, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete removes a booking without payments.
//
// @Summary      Delete booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      204
// @Failure      409  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookings.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Details lists the bill lines of a booking.
//
// @Summary      List bill lines
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {array}  domain.BookingDetail
// @Router       /bookings/{id}/details [get]
func (h *BookingHandler) Details(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	details, err := h.bookings.Details(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// AddDetail appends a bill line to an editable booking.
//
// @Summary      Add bill line
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int               true  "Booking ID"
// @Param        body  body  addDetailRequest  true  "Bill line"
// @Success      201   {object}  domain.BookingDetail
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id}/details [post]
func (h *BookingHandler) AddDetail(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addDetailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.bookings.AddDetail(c.Request().Context(), ports.AddDetailInput{
		BookingID:      id,
		Type:           domain.DetailType(req.Type),
		ServiceID:      req.ServiceID,
		Description:    req.Description,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		DiscountAmount: req.DiscountAmount,
		ActorID:        actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// RemoveDetail deletes a bill line from an editable booking.
//
// @Summary      Remove bill line
// @Tags         bookings
// @Security     BearerAuth
// @Param        id         path  int  true  "Booking ID"
// @Param        detail_id  path  int  true  "Detail ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id}/details/{detail_id} [delete]
func (h *BookingHandler) RemoveDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detailID, err := pathID(c, "detail_id")
	if err != nil {
		return err
	}
	if err := h.bookings.RemoveDetail(c.Request().Context(), id, detailID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Payments lists the payments recorded against a booking.
//
// @Summary      List payments
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking ID"
// @Success      200  {array}  domain.Payment
// @Router       /bookings/{id}/payments [get]
func (h *BookingHandler) Payments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	payments, err := h.bookings.Payments(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// AddPayment records money received against an editable booking.
//
// @Summary      Add payment
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Booking ID"
// @Param        body  body  addPaymentRequest  true  "Payment"
// @Success      201   {object}  domain.Payment
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id}/payments [post]
func (h *BookingHandler) AddPayment(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.bookings.AddPayment(c.Request().Context(), ports.AddPaymentInput{
		BookingID:   id,
		Method:      domain.PaymentMethod(req.Method),
		Amount:      req.Amount,
		ReferenceNo: req.ReferenceNo,
		PayerName:   req.PayerName,
		Notes:       req.Notes,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// RemovePayment deletes a payment from an editable booking.
//
// @Summary      Remove payment
// @Tags         bookings
// @Security     BearerAuth
// @Param        id          path  int  true  "Booking ID"
// @Param        payment_id  path  int  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id}/payments/{payment_id} [delete]
func (h *BookingHandler) RemovePayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	paymentID, err := pathID(c, "payment_id")
	if err != nil {
		return err
	}
	if err := h.bookings.RemovePayment(c.Request().Context(), id, paymentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
