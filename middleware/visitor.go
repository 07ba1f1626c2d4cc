package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VisitorCookieName identifies the browser whose contact form state is tracked
const VisitorCookieName = "ajc_visitor"

const visitorContextKey = "visitor_id"

// Visitor ensures every request carries a visitor id, issuing a cookie when
// the browser has none or presents one that is not a UUID.
func Visitor(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var visitorID string
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					visitorID = id.String()
				}
			}

			if visitorID == "" {
				visitorID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    visitorID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(visitorContextKey, visitorID)
			return next(c)
		}
	}
}

// GetVisitorID returns the visitor id set by the Visitor middleware
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorContextKey).(string); ok {
		return id
	}
	return ""
}
