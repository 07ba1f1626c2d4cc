package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"strings"
	texttemplate "text/template"

	"al_jazira_website/models"
)

//go:embed emails/*.html emails/*.txt
var emailFiles embed.FS

// emailTemplates holds emails/inquiry.html and emails/inquiry.txt
var emailTemplates fs.FS = emailFiles

// Email represents an email message
type Email struct {
	To       []string
	Cc       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// InquiryRow is one line of the tabular inquiry email
type InquiryRow struct {
	Label string
	Value string
}

// InquiryEmailData contains data for the inquiry email template
type InquiryEmailData struct {
	Subject string
	Rows    []InquiryRow
}

// loadTemplate renders emails/templateName.html and emails/templateName.txt
func loadTemplate(templateName string, data interface{}) (html string, text string, err error) {
	readFile := func(ext string) ([]byte, string, error) {
		path := "emails/" + templateName + ext
		content, err := fs.ReadFile(emailTemplates, path)
		if err != nil {
			return nil, path, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return content, path, nil
	}

	content, path, err := readFile(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	// Plain text bodies must not be HTML-escaped
	content, path, err = readFile(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(path).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// BuildInquiryEmail renders a submission as a table addressed to the inbox
func BuildInquiryEmail(inbox string, req *models.SubmissionRequest) *Email {
	data := InquiryEmailData{
		Subject: req.DerivedSubject,
		Rows: []InquiryRow{
			{Label: "Name", Value: req.Name},
			{Label: "Email", Value: req.Email},
			{Label: "Subject", Value: req.Subject},
			{Label: "Message", Value: req.Message},
		},
	}

	htmlBody, textBody, err := loadTemplate("inquiry", data)
	if err != nil {
		log.Printf("[WARNING] Error loading inquiry email template: %v", err)
		textBody = plainInquiry(data)
	}

	return &Email{
		To:       []string{inbox},
		Cc:       append([]string(nil), req.Recipients...),
		ReplyTo:  req.Email,
		Subject:  req.DerivedSubject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// plainInquiry is the text body used when no template is available
func plainInquiry(data InquiryEmailData) string {
	var b strings.Builder
	b.WriteString(data.Subject)
	b.WriteString("\n\n")
	for _, row := range data.Rows {
		fmt.Fprintf(&b, "%-8s %s\n", row.Label+":", row.Value)
	}
	return b.String()
}
