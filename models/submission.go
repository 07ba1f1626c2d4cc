package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// SubjectPrefix is prepended to the visitor's name to build the relay subject line
const SubjectPrefix = "New Inquiry from: "

// SubmissionState is the contact form lifecycle shown to the visitor
type SubmissionState string

// Submission states
const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionPending   SubmissionState = "pending"
	SubmissionSucceeded SubmissionState = "succeeded"
	SubmissionFailed    SubmissionState = "failed"
)

// IsTerminal reports whether the state ends a submission
func (s SubmissionState) IsTerminal() bool {
	return s == SubmissionSucceeded || s == SubmissionFailed
}

// ContactFields holds the four visible contact form values
type ContactFields struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// IsEmpty reports whether every field is blank
func (f ContactFields) IsEmpty() bool {
	return f == ContactFields{}
}

// SubmissionRequest is the payload relayed for one contact form submission.
// It lives only for the duration of the outbound call.
type SubmissionRequest struct {
	ContactFields
	ID             string // Correlates logs and email delivery; not part of the wire body
	DerivedSubject string
	Recipients     []string // Secondary notification addresses (CC)
	TemplateHint   string
}

// NewSubmissionRequest builds the relay payload for the given fields
func NewSubmissionRequest(fields ContactFields, recipients []string, templateHint string) *SubmissionRequest {
	return &SubmissionRequest{
		ID:             uuid.NewString(),
		ContactFields:  fields,
		DerivedSubject: SubjectPrefix + fields.Name,
		Recipients:     append([]string(nil), recipients...),
		TemplateHint:   templateHint,
	}
}

// CC returns the recipients as the comma-separated list the relay expects
func (r *SubmissionRequest) CC() string {
	return strings.Join(r.Recipients, ",")
}

// MarshalJSON encodes the request in the mail-relay wire format
func (r SubmissionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ContactFields
		RelaySubject  string `json:"_subject"`
		RelayCC       string `json:"_cc"`
		RelayTemplate string `json:"_template"`
	}{
		ContactFields: r.ContactFields,
		RelaySubject:  r.DerivedSubject,
		RelayCC:       r.CC(),
		RelayTemplate: r.TemplateHint,
	})
}
