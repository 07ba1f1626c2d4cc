package handlers

import (
	"net/http"

	"al_jazira_website/config"
	"al_jazira_website/services"
	"al_jazira_website/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the one-page site, with the contact form in the visitor's current state
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()

	view := pages.LandingView{
		SEO:       GetSEO(ctx, cfg, services.Content),
		Content:   services.Content,
		Form:      contactFormView(c, cfg, visitorController(c)),
		AppURL:    cfg.AppURL,
		AssetBase: assetBase(cfg),
	}
	return renderComponent(c, http.StatusOK, pages.Landing(view))
}

// HealthHandler reports liveness for the load balancer
func HealthHandler(c echo.Context) error {
	visitors := 0
	if services.Visitors != nil {
		visitors = services.Visitors.Len()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"visitors": visitors,
	})
}
