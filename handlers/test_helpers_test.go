package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"al_jazira_website/config"
	"al_jazira_website/middleware"
	"al_jazira_website/models"
	"al_jazira_website/services"
	"al_jazira_website/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testVisitorID = "5b0c6f7e-2d1a-4c33-9a57-1f6a3c2b9e10"

// stubRelay records requests and returns err
type stubRelay struct {
	mu       sync.Mutex
	requests []*models.SubmissionRequest
	err      error
}

func (s *stubRelay) Send(ctx context.Context, req *models.SubmissionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.err
}

func (s *stubRelay) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// setupSite installs content, translations and a visitor store delivering through relay
func setupSite(t *testing.T, relay services.Relay) *config.Config {
	t.Helper()
	require.NoError(t, i18n.Load())

	content, err := services.LoadContent()
	require.NoError(t, err)

	oldContent, oldVisitors := services.Content, services.Visitors
	t.Cleanup(func() {
		services.Content = oldContent
		services.Visitors = oldVisitors
	})

	cfg := &config.Config{
		Environment:   "test",
		AppURL:        "https://ajc-jazira.com",
		RelayCC:       []string{"intekhab@ajc-jazira.com", "kalim@ajc-jazira.com"},
		RelayTemplate: "table",
		VisitorTTL:    time.Hour,
	}
	services.Content = content
	services.InitializeVisitors(cfg, relay)
	return cfg
}

func setupEcho(cfg *config.Config, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookieName, Value: testVisitorID})
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", cfg)
	c.Set("csrf", "test-csrf-token")

	return e, c, rec
}

// withVisitor runs h behind the visitor middleware so the cookie id is resolved
func withVisitor(h echo.HandlerFunc) echo.HandlerFunc {
	return middleware.Visitor(false)(h)
}
