package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"al_jazira_website/models"
	"al_jazira_website/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm() string {
	f := url.Values{}
	f.Set("name", "Ali")
	f.Set("email", "a@x.com")
	f.Set("subject", "Quote")
	f.Set("message", "Need piping work")
	return f.Encode()
}

func TestContactSubmitHandler(t *testing.T) {
	t.Run("HTMX success clears the form", func(t *testing.T) {
		relay := &stubRelay{}
		cfg := setupSite(t, relay)

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactSubmitHandler)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Contains(t, rec.Body.String(), "Message sent successfully!")
		assert.NotContains(t, rec.Body.String(), `value="Ali"`)

		require.Equal(t, 1, relay.count())
		assert.Equal(t, "Ali", relay.requests[0].Name)
		assert.Equal(t, "New Inquiry from: Ali", relay.requests[0].DerivedSubject)

		ctrl, ok := services.Visitors.Peek(testVisitorID)
		require.True(t, ok)
		assert.Equal(t, models.SubmissionSucceeded, ctrl.State())
	})

	t.Run("HTMX failure keeps the fields", func(t *testing.T) {
		relay := &stubRelay{err: services.ErrRelayRejected}
		cfg := setupSite(t, relay)

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactSubmitHandler)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to send message.")
		assert.Contains(t, rec.Body.String(), `value="Ali"`)
		assert.Contains(t, rec.Body.String(), "Need piping work</textarea>")
	})

	t.Run("Plain post redirects to the contact section", func(t *testing.T) {
		relay := &stubRelay{}
		cfg := setupSite(t, relay)

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))

		require.NoError(t, withVisitor(ContactSubmitHandler)(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get("Location"))
		assert.Equal(t, 1, relay.count())
	})

	t.Run("Pending submission is not dispatched again", func(t *testing.T) {
		relay := &stubRelay{}
		cfg := setupSite(t, relay)

		// Drive the visitor's controller into Pending with a blocking relay
		release := make(chan struct{})
		entered := make(chan struct{})
		blocking := services.RelayFunc(func(ctx context.Context, req *models.SubmissionRequest) error {
			close(entered)
			<-release
			return nil
		})
		services.InitializeVisitors(cfg, blocking)
		ctrl := services.Visitors.Controller(testVisitorID)
		done := make(chan struct{})
		go func() {
			ctrl.Submit(context.Background(), models.ContactFields{Name: "First"})
			close(done)
		}()
		<-entered

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
		c.Request().Header.Set("HX-Request", "true")
		require.NoError(t, withVisitor(ContactSubmitHandler)(c))

		assert.Contains(t, rec.Body.String(), `<button type="submit" disabled`)
		assert.Contains(t, rec.Body.String(), `hx-get="/contact/status"`)

		close(release)
		<-done
		assert.Equal(t, models.SubmissionSucceeded, ctrl.State())
	})

	t.Run("Turnstile failure skips the relay", func(t *testing.T) {
		relay := &stubRelay{}
		cfg := setupSite(t, relay)
		cfg.TurnstileSecretKey = "secret"

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactSubmitHandler)(c))

		assert.Contains(t, rec.Body.String(), "Please complete the verification and try again.")
		assert.Contains(t, rec.Body.String(), `value="Ali"`)
		assert.Equal(t, 0, relay.count())
	})

	t.Run("Turnstile failure without HTMX is a bad request", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})
		cfg.TurnstileSecretKey = "secret"

		_, c, _ := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))

		err := withVisitor(ContactSubmitHandler)(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestContactStatusHandler(t *testing.T) {
	t.Run("Unknown visitor gets an idle form", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})

		_, c, rec := setupEcho(cfg, http.MethodGet, "/contact/status", nil)
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactStatusHandler)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Send Message")
		assert.Equal(t, 0, services.Visitors.Len(), "status never creates a controller")
	})

	t.Run("Reflects the last outcome", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{err: services.ErrRelayTransport})
		services.Visitors.Controller(testVisitorID).Submit(context.Background(), models.ContactFields{Name: "Ali"})

		_, c, rec := setupEcho(cfg, http.MethodGet, "/contact/status", nil)
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactStatusHandler)(c))
		assert.Contains(t, rec.Body.String(), "Failed to send message.")
	})

	t.Run("Plain request redirects", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})

		_, c, rec := setupEcho(cfg, http.MethodGet, "/contact/status", nil)
		require.NoError(t, withVisitor(ContactStatusHandler)(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestContactResetHandler(t *testing.T) {
	t.Run("Clears a finished submission", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})
		services.Visitors.Controller(testVisitorID).Submit(context.Background(), models.ContactFields{Name: "Ali"})

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact/reset", nil)
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactResetHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Message sent successfully!")

		ctrl, ok := services.Visitors.Peek(testVisitorID)
		require.True(t, ok)
		assert.Equal(t, models.SubmissionIdle, ctrl.State())
	})

	t.Run("Unknown visitor gets an idle form", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact/reset", nil)
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, withVisitor(ContactResetHandler)(c))
		assert.Contains(t, rec.Body.String(), "Send Message")
		assert.Equal(t, 0, services.Visitors.Len())
	})

	t.Run("Plain request redirects", func(t *testing.T) {
		cfg := setupSite(t, &stubRelay{})

		_, c, rec := setupEcho(cfg, http.MethodPost, "/contact/reset", nil)
		require.NoError(t, withVisitor(ContactResetHandler)(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestContactRateLimited(t *testing.T) {
	cfg := setupSite(t, &stubRelay{})

	_, c, rec := setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
	c.Request().Header.Set("HX-Request", "true")
	require.NoError(t, ContactRateLimited(c, "Too many messages sent."))
	assert.Contains(t, rec.Body.String(), "Too many messages sent.")
	assert.Contains(t, rec.Body.String(), `value="Ali"`)

	_, c, _ = setupEcho(cfg, http.MethodPost, "/contact", strings.NewReader(contactForm()))
	err := ContactRateLimited(c, "Too many messages sent.")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
}

func TestHealthHandler(t *testing.T) {
	cfg := setupSite(t, &stubRelay{})
	services.Visitors.Controller(testVisitorID)

	_, c, rec := setupEcho(cfg, http.MethodGet, "/healthz", nil)
	require.NoError(t, HealthHandler(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["visitors"])
}
