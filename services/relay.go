package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"al_jazira_website/config"
	"al_jazira_website/models"
)

// Relay failure classes. Both surface to the visitor as the same generic failure.
var (
	ErrRelayTransport = errors.New("relay transport failure")
	ErrRelayRejected  = errors.New("relay rejected submission")
)

// Relay delivers one contact submission to the inbox
type Relay interface {
	Send(ctx context.Context, req *models.SubmissionRequest) error
}

// RelayFunc adapts a plain function to the Relay interface
type RelayFunc func(ctx context.Context, req *models.SubmissionRequest) error

func (f RelayFunc) Send(ctx context.Context, req *models.SubmissionRequest) error {
	return f(ctx, req)
}

// NewRelay selects the relay configured by RELAY_DRIVER.
// Test mode always logs instead of relaying.
func NewRelay(cfg *config.Config) (Relay, error) {
	if cfg.EmailTestMode {
		log.Println("[INFO] Email test mode enabled: contact submissions are logged, not relayed")
		return &LogRelay{}, nil
	}

	switch cfg.RelayDriver {
	case config.RelayDriverFormSubmit, "":
		if cfg.RelayEndpoint == "" {
			return nil, fmt.Errorf("RELAY_ENDPOINT not configured")
		}
		log.Printf("[INFO] Contact relay: formsubmit (%s)", cfg.RelayEndpoint)
		return NewFormSubmitRelay(cfg.RelayEndpoint, cfg.RelayTimeout), nil
	case config.RelayDriverResend:
		relay, err := NewResendRelay(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Contact relay: resend (inbox %s)", cfg.InquiryInbox)
		return relay, nil
	case config.RelayDriverLog:
		return &LogRelay{}, nil
	default:
		return nil, fmt.Errorf("unknown relay driver %q", cfg.RelayDriver)
	}
}

// LogRelay prints submissions to the console. Used in development.
type LogRelay struct{}

func (l *LogRelay) Send(ctx context.Context, req *models.SubmissionRequest) error {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 CONTACT INQUIRY (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("Inquiry: %s", req.ID)
	log.Printf("Subject: %s", req.DerivedSubject)
	log.Printf("From: %s <%s>", req.Name, req.Email)
	log.Printf("CC: %s", req.CC())
	log.Printf("Topic: %s", req.Subject)
	log.Printf("\n--- MESSAGE ---\n%s", truncate(req.Message, 500))
	log.Printf("%s\n", separator)
	return nil
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
