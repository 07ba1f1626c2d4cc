package pages

import (
	"html/template"

	"al_jazira_website/models"
	"al_jazira_website/templates/components"

	"github.com/a-h/templ"
)

// LandingView carries everything the one-page site renders
type LandingView struct {
	SEO       *models.SEO
	Content   *models.SiteContent
	Form      ContactFormView
	AppURL    string
	AssetBase string // "/static" or the CDN prefix
}

// StructuredData returns the Organization JSON-LD for the page head
func (v LandingView) StructuredData() template.JS {
	return template.JS(components.JSON(components.OrganizationSchema(v.Content, v.AppURL, AssetURL(v.AssetBase, v.Content.Logo))))
}

// Landing renders the full landing page
func Landing(view LandingView) templ.Component {
	return render("landing", view.AssetBase, view)
}
