package handlers

import (
	"context"
	"errors"
	"net/http"

	"al_jazira_website/config"
	"al_jazira_website/middleware"
	"al_jazira_website/models"
	"al_jazira_website/services"
	"al_jazira_website/services/i18n"
	"al_jazira_website/templates/pages"

	"github.com/labstack/echo/v4"
)

// visitorController returns the visitor's controller without creating one
func visitorController(c echo.Context) *services.SubmissionController {
	if services.Visitors == nil {
		return nil
	}
	ctrl, ok := services.Visitors.Peek(middleware.GetVisitorID(c))
	if !ok {
		return nil
	}
	return ctrl
}

// contactFormView reflects ctrl's state; a nil controller renders an idle form
func contactFormView(c echo.Context, cfg *config.Config, ctrl *services.SubmissionController) pages.ContactFormView {
	view := pages.ContactFormView{
		CSRFToken:        middleware.GetCSRFToken(c),
		State:            models.SubmissionIdle,
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
	if services.Content != nil {
		view.Contact = services.Content.Contact
	}
	if ctrl != nil {
		view.State = ctrl.State()
		view.Fields = ctrl.Fields()
	}
	return view
}

func contactFieldsFromForm(c echo.Context) models.ContactFields {
	return models.ContactFields{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}
}

// rejectedFormView renders the posted values with a failure notice, without touching the controller
func rejectedFormView(c echo.Context, cfg *config.Config, notice string) pages.ContactFormView {
	view := contactFormView(c, cfg, nil)
	view.State = models.SubmissionFailed
	view.Fields = contactFieldsFromForm(c)
	view.Notice = notice
	return view
}

// ContactSubmitHandler relays the contact form through the visitor's submission controller
func ContactSubmitHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()

	// Validate Turnstile CAPTCHA (if configured)
	if cfg.TurnstileSecretKey != "" {
		token := c.FormValue("cf-turnstile-response")
		isValid, err := services.VerifyTurnstileToken(ctx, token, cfg.TurnstileSecretKey, c.RealIP())
		if err != nil || !isValid {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
			if middleware.IsHTMX(c) {
				return renderComponent(c, http.StatusOK, pages.ContactForm(rejectedFormView(c, cfg, i18n.T(ctx, "contact.error.captcha"))))
			}
			return echo.NewHTTPError(http.StatusBadRequest, "CAPTCHA verification failed")
		}
	}

	ctrl := services.Visitors.Controller(middleware.GetVisitorID(c))

	// Once dispatched the relay call runs to completion even if the browser disconnects
	state, err := ctrl.Submit(context.WithoutCancel(ctx), contactFieldsFromForm(c))
	switch {
	case errors.Is(err, services.ErrSubmissionPending):
		c.Logger().Infof("Contact submission ignored, previous one still pending")
	case errors.Is(err, services.ErrRelayRejected):
		c.Logger().Warnf("Contact submission rejected by relay: %v", err)
	case err != nil:
		c.Logger().Errorf("Contact submission failed: %v", err)
	default:
		c.Logger().Infof("Contact submission relayed (state: %s)", state)
	}

	if !middleware.IsHTMX(c) {
		return redirectToContact(c)
	}
	return renderComponent(c, http.StatusOK, pages.ContactForm(contactFormView(c, cfg, ctrl)))
}

// ContactStatusHandler returns the form partial for the visitor's current state
func ContactStatusHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	if !middleware.IsHTMX(c) {
		return redirectToContact(c)
	}
	return renderComponent(c, http.StatusOK, pages.ContactForm(contactFormView(c, cfg, visitorController(c))))
}

// ContactResetHandler clears a finished submission so the visitor can write a new message
func ContactResetHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctrl := visitorController(c)
	if ctrl != nil && !ctrl.Reset() {
		c.Logger().Infof("Contact reset ignored, submission still pending")
	}
	if !middleware.IsHTMX(c) {
		return redirectToContact(c)
	}
	return renderComponent(c, http.StatusOK, pages.ContactForm(contactFormView(c, cfg, ctrl)))
}

// ContactRateLimited renders the limit notice inside the form for htmx posts
func ContactRateLimited(c echo.Context, message string) error {
	if !middleware.IsHTMX(c) {
		return echo.NewHTTPError(http.StatusTooManyRequests, message)
	}
	cfg := c.Get("config").(*config.Config)
	return renderComponent(c, http.StatusOK, pages.ContactForm(rejectedFormView(c, cfg, message)))
}
