package components

import (
	"encoding/json"
	"log"
	"strings"

	"al_jazira_website/models"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// OrganizationSchema builds schema.org Organization data for search engines
func OrganizationSchema(content *models.SiteContent, appURL, logoURL string) map[string]interface{} {
	if strings.HasPrefix(logoURL, "/") {
		logoURL = appURL + logoURL
	}

	schema := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Organization",
		"name":          content.LegalName,
		"alternateName": content.CompanyName,
		"url":           appURL + "/",
		"logo":          logoURL,
		"slogan":        content.Tagline,
		"foundingDate":  content.Established,
		"knowsAbout":    content.Expertise,
		"address":       map[string]interface{}{
			"@type":          "PostalAddress",
			"addressCountry": "SA",
		},
	}

	if content.Contact.Phone != "" || len(content.Contact.Emails) > 0 {
		point := map[string]interface{}{
			"@type":       "ContactPoint",
			"contactType": "sales",
		}
		if content.Contact.Phone != "" {
			point["telephone"] = strings.ReplaceAll(content.Contact.Phone, " ", "")
		}
		if len(content.Contact.Emails) > 0 {
			point["email"] = content.Contact.Emails[0]
		}
		schema["contactPoint"] = point
	}

	return schema
}
