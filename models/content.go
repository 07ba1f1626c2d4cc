package models

// NavLink is an in-page anchor shown in the navigation bar
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Service is one entry of the services showcase
type Service struct {
	Icon        string   `yaml:"icon"`   // Icon name, resolved to an inline SVG by the page
	Accent      string   `yaml:"accent"` // Tailwind text color class for the icon
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

// Milestone is one step of the company timeline
type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Value is a company value card (safety, delivery, quality)
type Value struct {
	Icon        string `yaml:"icon"`
	Accent      string `yaml:"accent"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContactChannel groups the ways to reach the company
type ContactChannel struct {
	Location string   `yaml:"location"`
	Phone    string   `yaml:"phone"`
	Emails   []string `yaml:"emails"`
}

// Leader is the executive featured in the about section
type Leader struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Photo string `yaml:"photo"`
}

// SiteContent is the immutable data the landing page renders
type SiteContent struct {
	CompanyName string         `yaml:"company_name"`
	LegalName   string         `yaml:"legal_name"`
	Tagline     string         `yaml:"tagline"`
	Established string         `yaml:"established"`
	Logo        string         `yaml:"logo"`
	TeamPhoto   string         `yaml:"team_photo"`
	Leader      Leader         `yaml:"leader"`
	NavLinks    []NavLink      `yaml:"nav_links"`
	Services    []Service      `yaml:"services"`
	Clients     []string       `yaml:"clients"`
	Milestones  []Milestone    `yaml:"milestones"`
	Values      []Value        `yaml:"values"`
	Expertise   []string       `yaml:"expertise"`
	Contact     ContactChannel `yaml:"contact"`
}
