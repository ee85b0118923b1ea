package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CallerHeader carries the calling identity. The fronting environment
// authenticates callers and sets this header; the core trusts it as-is.
const CallerHeader = "X-Dbay-Caller"

func RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := strings.TrimSpace(c.Request().Header.Get(CallerHeader))
		if caller == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		c.Set("caller", caller)
		return next(c)
	}
}
