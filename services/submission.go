package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"al_jazira_website/models"
)

// ErrSubmissionPending is returned when a submit arrives while another is in flight
var ErrSubmissionPending = errors.New("a submission is already pending")

// SubmissionOptions carries the fixed relay settings applied to every submission
type SubmissionOptions struct {
	Recipients   []string
	TemplateHint string
}

// SubmissionController owns the contact form lifecycle for one visitor.
// It is the only writer of the state and the visible field values.
type SubmissionController struct {
	relay        Relay
	recipients   []string
	templateHint string

	mu         sync.Mutex
	state      models.SubmissionState
	fields     models.ContactFields
	lastActive time.Time
}

// NewSubmissionController creates an idle controller that delivers through relay
func NewSubmissionController(relay Relay, opts SubmissionOptions) *SubmissionController {
	return &SubmissionController{
		relay:        relay,
		recipients:   append([]string(nil), opts.Recipients...),
		templateHint: opts.TemplateHint,
		state:        models.SubmissionIdle,
		lastActive:   time.Now(),
	}
}

// Submit relays one submission and returns the terminal state it reached.
//
// While a submission is pending a second call is not dispatched and returns
// SubmissionPending with ErrSubmissionPending. Otherwise the controller moves to
// Pending, calls the relay once, and settles on Succeeded (fields cleared) or
// Failed (fields kept). The returned error is always nil, ErrRelayTransport or
// ErrRelayRejected (possibly wrapped); it never escapes as a panic.
// Fields are relayed exactly as entered; escaping happens where they are rendered.
func (s *SubmissionController) Submit(ctx context.Context, fields models.ContactFields) (state models.SubmissionState, err error) {
	s.mu.Lock()
	if s.state == models.SubmissionPending {
		s.mu.Unlock()
		return models.SubmissionPending, ErrSubmissionPending
	}
	s.state = models.SubmissionPending
	s.fields = fields
	s.lastActive = time.Now()
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: relay panicked: %v", ErrRelayTransport, r)
		}
		if err != nil && !errors.Is(err, ErrRelayTransport) && !errors.Is(err, ErrRelayRejected) {
			err = fmt.Errorf("%w: %v", ErrRelayTransport, err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.state = models.SubmissionFailed
		} else {
			s.state = models.SubmissionSucceeded
			s.fields = models.ContactFields{}
		}
		s.lastActive = time.Now()
		state = s.state
	}()

	req := models.NewSubmissionRequest(fields, s.recipients, s.templateHint)
	return models.SubmissionPending, s.relay.Send(ctx, req)
}

// State returns the current lifecycle state
func (s *SubmissionController) State() models.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fields returns the values the form should currently display
func (s *SubmissionController) Fields() models.ContactFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// IsPending reports whether the submit trigger must be disabled
func (s *SubmissionController) IsPending() bool {
	return s.State() == models.SubmissionPending
}

// Reset returns the controller to Idle with an empty form.
// It refuses while a submission is pending.
func (s *SubmissionController) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.SubmissionPending {
		return false
	}
	s.state = models.SubmissionIdle
	s.fields = models.ContactFields{}
	s.lastActive = time.Now()
	return true
}

// LastActive returns when the controller last changed state
func (s *SubmissionController) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
