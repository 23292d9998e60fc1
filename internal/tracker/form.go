package tracker

import (
	"fmt"
	"strings"

	"outreach-tracker/internal/models"
)

// FormInput carries the editable fields of a company record. Identity,
// serial number, and creation timestamp never travel through the form; the
// tracker preserves them from the existing record on update.
type FormInput struct {
	Name     string
	Detail   string
	Contact  string
	Email    string
	Location string
	Website  string

	MailSent  models.MailStatus
	Interview models.InterviewStatus
}

// Validate enforces the required fields. Enforcement lives here at the input
// layer only; the server accepts whatever it is sent.
func (f FormInput) Validate() error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"company name", f.Name},
		{"company detail", f.Detail},
		{"contact", f.Contact},
		{"email", f.Email},
		{"location", f.Location},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// apply copies the form fields onto base, defaulting empty statuses. Base
// supplies everything the form does not carry.
func (f FormInput) apply(base models.Company) models.Company {
	base.CompanyName = f.Name
	base.CompanyDetail = f.Detail
	base.CompanyContact = f.Contact
	base.CompanyMail = f.Email
	base.CompanyLocation = f.Location
	base.CompanyWebsite = f.Website

	base.MailSent = f.MailSent
	if base.MailSent == "" {
		base.MailSent = models.MailNotSent
	}
	base.Interview = f.Interview
	if base.Interview == "" {
		base.Interview = models.InterviewNoIdea
	}
	base.Acknowledged = ""

	return base
}
