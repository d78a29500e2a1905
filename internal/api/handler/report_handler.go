package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// ReportHandler exposes the Accountant-facing aggregations.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// reportRange reads the mandatory from/to query parameters.
func reportRange(c echo.Context) (time.Time, time.Time, error) {
	from := optTime(c, "from")
	to := optTime(c, "to")
	if from == nil || to == nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return *from, *to, nil
}

// Summary returns total, room and service revenue over a range.
//
// @Summary      Revenue summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Range start (RFC 3339 or date)"
// @Param        to    query  string  true  "Range end"
// @Success      200  {object}  ports.SummaryResult
// @Failure      400  {object}  errorResponse
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}
	result, err := h.reports.Summary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RevenueByRoomType breaks revenue down by rate card.
//
// @Summary      Revenue by room type
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Range start"
// @Param        to    query  string  true  "Range end"
// @Success      200  {object}  ports.BreakdownResult
// @Router       /reports/revenue/room-types [get]
func (h *ReportHandler) RevenueByRoomType(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}
	result, err := h.reports.RevenueByRoomType(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RevenueByService breaks service revenue down by catalog item.
//
// @Summary      Revenue by service
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Range start"
// @Param        to    query  string  true  "Range end"
// @Success      200  {object}  ports.BreakdownResult
// @Router       /reports/revenue/services [get]
func (h *ReportHandler) RevenueByService(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}
	result, err := h.reports.RevenueByService(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GuestNationality counts stays by guest nationality.
//
// @Summary      Guest nationality distribution
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Range start"
// @Param        to    query  string  true  "Range end"
// @Success      200  {array}  ports.DistributionRow
// @Router       /reports/guests/nationality [get]
func (h *ReportHandler) GuestNationality(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reports.GuestNationality(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// BookingsPerDay counts bookings created per day.
//
// @Summary      Bookings per day
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Range start"
// @Param        to    query  string  true  "Range end"
// @Success      200  {array}  ports.DailyCount
// @Router       /reports/bookings/daily [get]
func (h *ReportHandler) BookingsPerDay(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}
	rows, err := h.reports.BookingsPerDay(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
