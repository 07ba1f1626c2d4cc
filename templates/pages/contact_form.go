package pages

import (
	"al_jazira_website/models"

	"github.com/a-h/templ"
)

// ContactFormView is what the contact form partial needs to render one visitor's state
type ContactFormView struct {
	CSRFToken        string
	State            models.SubmissionState
	Fields           models.ContactFields
	TurnstileSiteKey string
	Contact          models.ContactChannel
	// Notice replaces the generic failure detail (rate limit, captcha)
	Notice string
}

// IsPending reports whether the submit button must be disabled
func (v ContactFormView) IsPending() bool { return v.State == models.SubmissionPending }

func (v ContactFormView) Succeeded() bool { return v.State == models.SubmissionSucceeded }

func (v ContactFormView) Failed() bool { return v.State == models.SubmissionFailed }

// DirectEmail is the address offered when relaying fails
func (v ContactFormView) DirectEmail() string {
	if len(v.Contact.Emails) == 0 {
		return ""
	}
	return v.Contact.Emails[0]
}

// ContactForm renders the form with its status block
func ContactForm(view ContactFormView) templ.Component {
	return render("contact_form", "", view)
}
