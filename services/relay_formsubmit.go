package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"al_jazira_website/models"
)

// FormSubmitRelay posts submissions as JSON to a FormSubmit-style AJAX endpoint
type FormSubmitRelay struct {
	endpoint string
	client   *http.Client
}

// NewFormSubmitRelay creates a relay for the endpoint. A zero timeout leaves the
// call bounded only by the caller's context.
func NewFormSubmitRelay(endpoint string, timeout time.Duration) *FormSubmitRelay {
	return &FormSubmitRelay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send issues exactly one POST. Any 2xx status is an acceptance; the body is ignored.
func (r *FormSubmitRelay) Send(ctx context.Context, req *models.SubmissionRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to encode submission: %v", ErrRelayTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", ErrRelayTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayTransport, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}
	return nil
}
