package models

import "time"

// OutreachSnapshot is one daily record of aggregate outreach statistics,
// written by the scheduler. SnapshotAt is truncated to the day; a second run
// on the same day overwrites the earlier row.
type OutreachSnapshot struct {
	SnapshotAt  time.Time `json:"snapshotAt"`
	Total       int       `json:"total"`
	MailSent    int       `json:"mailSent"`
	Interviewed int       `json:"interviewed"`
	Pending     int       `json:"pending"`
}
