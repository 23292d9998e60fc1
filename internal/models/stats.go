package models

// Stats is the aggregate snapshot rendered above the list. Counts are always
// computed from the full authoritative set, never from a filtered view.
type Stats struct {
	Total       int `json:"total"`
	MailSent    int `json:"mailSent"`
	Interviewed int `json:"interviewed"`
	Pending     int `json:"pending"`
}
