package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/api/middleware"
	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

type stubBookingService struct {
	createFn     func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error)
	checkOutFn   func(ctx context.Context, id, actorID int64) (*domain.Booking, error)
	addDetailFn  func(ctx context.Context, input ports.AddDetailInput) (*domain.BookingDetail, error)
	addPaymentFn func(ctx context.Context, input ports.AddPaymentInput) (*domain.Payment, error)
}

func (s *stubBookingService) Today(_ context.Context, page, limit int) (*ports.BookingListResult, error) {
	return &ports.BookingListResult{Page: page, Limit: limit}, nil
}

func (s *stubBookingService) History(_ context.Context, filter ports.BookingHistoryFilter) (*ports.BookingListResult, error) {
	return &ports.BookingListResult{Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *stubBookingService) Get(_ context.Context, _ int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) Update(_ context.Context, _ ports.UpdateBookingInput) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) CheckIn(_ context.Context, _, _ int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) CheckOut(ctx context.Context, id, actorID int64) (*domain.Booking, error) {
	return s.checkOutFn(ctx, id, actorID)
}

func (s *stubBookingService) Cancel(_ context.Context, _, _ int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) MarkNoShow(_ context.Context, _, _ int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) Delete(_ context.Context, _ int64) error {
	return domain.ErrBookingNotFound
}

func (s *stubBookingService) Details(_ context.Context, _ int64) ([]*domain.BookingDetail, error) {
	return nil, nil
}

func (s *stubBookingService) AddDetail(ctx context.Context, input ports.AddDetailInput) (*domain.BookingDetail, error) {
	return s.addDetailFn(ctx, input)
}

func (s *stubBookingService) RemoveDetail(_ context.Context, _, _ int64) error {
	return domain.ErrDetailNotFound
}

func (s *stubBookingService) Payments(_ context.Context, _ int64) ([]*domain.Payment, error) {
	return nil, nil
}

func (s *stubBookingService) AddPayment(ctx context.Context, input ports.AddPaymentInput) (*domain.Payment, error) {
	return s.addPaymentFn(ctx, input)
}

func (s *stubBookingService) RemovePayment(_ context.Context, _, _ int64) error {
	return domain.ErrPaymentNotFound
}

func authedContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(7))
	c.Set(middleware.CtxUsername, "reception")
	c.Set(middleware.CtxRole, domain.RoleReceptionist)
	return c, rec
}

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(_ context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			if input.ChargeType != domain.ChargeByNight || input.RoomID != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ActorID != 7 {
				t.Fatalf("expected actor from claims, got %d", input.ActorID)
			}
			return &domain.Booking{ID: 1, BookingNo: "BKG260310001", Status: domain.BookingReserved}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := authedContext(e, http.MethodPost, "/bookings", `{
		"charge_type": "Night",
		"checkin": "2026-03-10T14:00:00Z",
		"checkout": "2026-03-12T12:00:00Z",
		"room_id": 3,
		"room_type_id": 1,
		"primary_guest_id": 2,
		"num_adults": 2
	}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.BookingNo != "BKG260310001" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestBookingHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(_ context.Context, _ ports.CreateBookingInput) (*domain.Booking, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, _ := authedContext(e, http.MethodPost, "/bookings", `{
		"charge_type": "Weekly",
		"checkin": "2026-03-10T14:00:00Z",
		"room_id": 3,
		"room_type_id": 1,
		"primary_guest_id": 2,
		"num_adults": 2
	}`)
	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestBookingHandler_Create_RequiresClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestBookingHandler_CheckOut(t *testing.T) {
	e := newTestEcho()
	checkout := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	stub := &stubBookingService{
		checkOutFn: func(_ context.Context, id, actorID int64) (*domain.Booking, error) {
			if id != 42 || actorID != 7 {
				t.Fatalf("unexpected args: %d %d", id, actorID)
			}
			return &domain.Booking{
				ID: id, Status: domain.BookingCheckedOut,
				PaymentStatus: domain.PaymentPaid, Checkout: &checkout,
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := authedContext(e, http.MethodPost, "/bookings/42/checkout", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.CheckOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != domain.BookingCheckedOut || resp.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("unexpected booking: %+v", resp)
	}
}

func TestBookingHandler_CheckOut_InvalidID(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	c, _ := authedContext(e, http.MethodPost, "/bookings/abc/checkout", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.CheckOut(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBookingHandler_AddPayment(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		addPaymentFn: func(_ context.Context, input ports.AddPaymentInput) (*domain.Payment, error) {
			if input.BookingID != 42 || input.Method != domain.PayCash || input.Amount != 50 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Payment{ID: 1, BookingID: input.BookingID, Method: input.Method, Amount: input.Amount}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := authedContext(e, http.MethodPost, "/bookings/42/payments",
		`{"payment_method":"Cash","amount":50}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.AddPayment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBookingHandler_AddDetail_ValidatesType(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		addDetailFn: func(_ context.Context, _ ports.AddDetailInput) (*domain.BookingDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, _ := authedContext(e, http.MethodPost, "/bookings/42/details",
		`{"type":"Bribe","quantity":1,"unit_price":10}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := handler.AddDetail(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}
