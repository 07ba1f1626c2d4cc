package services

import (
	"bytes"
	_ "embed"
	"fmt"

	"al_jazira_website/models"

	"gopkg.in/yaml.v3"
)

//go:embed content/site.yaml
var siteYAML []byte

// Content is the site content loaded at start-up
var Content *models.SiteContent

// LoadContent parses the embedded site content
func LoadContent() (*models.SiteContent, error) {
	return ParseContent(siteYAML)
}

// ParseContent decodes site content from YAML, rejecting unknown keys
func ParseContent(data []byte) (*models.SiteContent, error) {
	var content models.SiteContent
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if content.CompanyName == "" {
		return nil, fmt.Errorf("site content is missing company_name")
	}
	return &content, nil
}

// MustLoadContent is LoadContent for start-up, where broken content is fatal
func MustLoadContent() *models.SiteContent {
	content, err := LoadContent()
	if err != nil {
		panic(err)
	}
	return content
}
