package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestVisitor(t *testing.T) {
	e := echo.New()
	handler := Visitor(true)(func(c echo.Context) error {
		return c.String(http.StatusOK, GetVisitorID(c))
	})

	t.Run("IssuesCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))

		id := rec.Body.String()
		_, err := uuid.Parse(id)
		assert.NoError(t, err)

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, VisitorCookieName, cookies[0].Name)
			assert.Equal(t, id, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
		}
	})

	t.Run("ReusesValidCookie", func(t *testing.T) {
		existing := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: existing})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, existing, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("ReplacesForgedCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "../../etc/passwd"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.NotEqual(t, "../../etc/passwd", rec.Body.String())
		assert.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestGetVisitorIDMissing(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Equal(t, "", GetVisitorID(c))
}
