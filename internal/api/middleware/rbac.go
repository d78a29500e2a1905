package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hotelworks/hms/internal/api/metrics"
	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

// Require enforces that the authenticated role holds the given capability.
// Must run after Auth.
func Require(auth ports.AuthService, cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if err := auth.Authorize(role, cap); err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return err
			}
			return next(c)
		}
	}
}
