package models

import "time"

// Company is one outreach target. It carries two identities: StoreID is
// assigned by the store on insert and addresses updates/deletes; ClientID is
// generated locally at creation time and keys the record in the UI. Both are
// immutable after creation and must be resent on every mutation.
type Company struct {
	StoreID  string `json:"_id,omitempty"`
	ClientID string `json:"id"`

	// SerialNo is count-at-creation + 1. Deletes leave gaps; it is never
	// resequenced.
	SerialNo int `json:"serialNo"`

	CompanyName     string `json:"companyName"`
	CompanyDetail   string `json:"companyDetail"`
	CompanyContact  string `json:"companyContact"`
	CompanyMail     string `json:"companyMail"`
	CompanyLocation string `json:"companyLocation"`
	CompanyWebsite  string `json:"companyWebsite,omitempty"`

	MailSent  MailStatus      `json:"mailSent"`
	Interview InterviewStatus `json:"interview"`

	// Acknowledged is the legacy outcome field (Yes/No). It is only ever
	// read from old records; Normalize folds it into Interview and writes
	// never emit it.
	Acknowledged string `json:"acknowledged,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// MailStatus is the outreach status of a company.
type MailStatus string

const (
	MailNotSent MailStatus = "Not Sent"
	MailSent    MailStatus = "Sent"
	MailPending MailStatus = "Pending"
)

// InterviewStatus is the interview outcome of a company.
type InterviewStatus string

const (
	InterviewNoIdea   InterviewStatus = "No Idea"
	InterviewSelected InterviewStatus = "Selected"
	InterviewRejected InterviewStatus = "Rejected"
)

// Normalize fills status defaults and folds the legacy acknowledged field
// (Yes/No) into the canonical interview field. Every record entering memory
// from the store passes through here, so statuses are never empty after read.
func (c *Company) Normalize() {
	if c.MailSent == "" {
		c.MailSent = MailNotSent
	}
	if c.Interview == "" {
		switch c.Acknowledged {
		case "Yes":
			c.Interview = InterviewSelected
		default:
			c.Interview = InterviewNoIdea
		}
	}
	c.Acknowledged = ""
}

// IsMailSent reports whether outreach mail has gone out.
func (c *Company) IsMailSent() bool {
	return c.MailSent == MailSent
}

// IsInterviewed reports whether the company responded with an outcome
// (selected under the canonical schema, acknowledged under the legacy one).
func (c *Company) IsInterviewed() bool {
	return c.Interview == InterviewSelected || c.Acknowledged == "Yes"
}

// Locations is the fixed list of place names offered as suggestions in the
// location input. Free text is still accepted.
var Locations = []string{
	"Deira",
	"Bur Dubai",
	"Business Bay",
	"Dubai Marina",
	"Jumeirah Lake Towers",
	"Al Quoz",
	"Sharjah",
	"Abu Dhabi",
	"Remote",
}
