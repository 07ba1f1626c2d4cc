package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	c := e.NewContext(nil, nil)
	assert.Equal(t, "", GetCSRFToken(c))

	c.Set("csrf", 42)
	assert.Equal(t, "", GetCSRFToken(c), "non-string tokens are ignored")

	c.Set("csrf", "test-csrf-token")
	assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
}

func TestIsHTMX(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	assert.False(t, IsHTMX(e.NewContext(req, httptest.NewRecorder())))

	req.Header.Set("HX-Request", "true")
	assert.True(t, IsHTMX(e.NewContext(req, httptest.NewRecorder())))
}
