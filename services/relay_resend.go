package services

import (
	"context"
	"fmt"
	"log"

	"al_jazira_website/config"
	"al_jazira_website/models"

	"github.com/resend/resend-go/v2"
)

// ResendRelay delivers submissions as email through the Resend API
type ResendRelay struct {
	client *resend.Client
	from   string
	inbox  string
}

// NewResendRelay creates a relay from the Resend settings in cfg
func NewResendRelay(cfg *config.Config) (*ResendRelay, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY not configured")
	}
	if cfg.InquiryInbox == "" {
		return nil, fmt.Errorf("INQUIRY_INBOX not configured")
	}

	return &ResendRelay{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		inbox:  cfg.InquiryInbox,
	}, nil
}

func (r *ResendRelay) Send(ctx context.Context, req *models.SubmissionRequest) error {
	email := BuildInquiryEmail(r.inbox, req)

	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      email.To,
		Cc:      email.Cc,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	// A replayed request with the same key is not delivered twice
	opts := &resend.SendEmailOptions{IdempotencyKey: "inquiry/" + req.ID}

	sent, err := r.client.Emails.SendWithOptions(ctx, params, opts)
	if err != nil {
		return fmt.Errorf("%w: resend: %v", ErrRelayTransport, err)
	}

	log.Printf("Inquiry %s sent via Resend (ID: %s) to: %v", req.ID, sent.Id, email.To)
	return nil
}
