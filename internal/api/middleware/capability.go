package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mutreserve/reservation-system/internal/api/metrics"
	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// Capability gates a route on a single capability via the authorization
// guard. Handlers behind it never inspect the role directly; they only ever
// reach this far when the guard has already answered yes.
func Capability(cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Can(role, cap) {
				metrics.AuthzDeniedTotal.WithLabelValues(string(cap)).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
