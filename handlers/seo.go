package handlers

import (
	"context"
	"strings"

	"al_jazira_website/config"
	"al_jazira_website/models"
	"al_jazira_website/services/i18n"
	"al_jazira_website/templates/pages"
)

// assetBase is where the page loads static files from: the R2 public URL
// once assets are published, the local /static mount otherwise.
func assetBase(cfg *config.Config) string {
	if cfg.R2PublicURL != "" {
		return cfg.R2PublicURL + "/static"
	}
	return "/static"
}

// absoluteURL prefixes site-relative URLs with the app URL
func absoluteURL(appURL, url string) string {
	if strings.HasPrefix(url, "/") {
		return appURL + url
	}
	return url
}

// GetSEO returns the SEO configuration for the landing page.
// Non-production deployments are kept out of search indexes.
func GetSEO(ctx context.Context, cfg *config.Config, content *models.SiteContent) *models.SEO {
	seo := models.DefaultSEO(i18n.T(ctx, "site.title"), i18n.T(ctx, "site.description")).
		WithCanonical(cfg.AppURL + "/").
		WithKeywords(i18n.T(ctx, "site.keywords"))
	seo.Locale = i18n.GetLocale(ctx)

	if content != nil && content.TeamPhoto != "" {
		seo.WithOGImage(absoluteURL(cfg.AppURL, pages.AssetURL(assetBase(cfg), content.TeamPhoto)))
	}
	if !cfg.IsProduction() {
		seo.WithNoIndex()
	}
	return seo
}
