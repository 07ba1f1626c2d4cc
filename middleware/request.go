package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFContextKey is where echo's CSRF middleware stores the token
var CSRFContextKey = echomiddleware.DefaultCSRFConfig.ContextKey

// GetCSRFToken returns the token the contact form must echo back in _csrf
func GetCSRFToken(c echo.Context) string {
	token, _ := c.Get(CSRFContextKey).(string)
	return token
}

// IsHTMX reports whether the request was issued by htmx
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
