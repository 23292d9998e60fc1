package export

import (
	"net/url"
	"strings"
)

// GmailComposeURL builds a Gmail compose link that BCCs every recipient.
// Opening it in a browser is the whole mail integration: nothing is sent
// from here.
func GmailComposeURL(recipients []string, subject, body string) string {
	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")

	q.Set("bcc", strings.Join(recipients, ","))

	if subject != "" {
		q.Set("su", subject)
	}
	if body != "" {
		q.Set("body", body)
	}

	return "https://mail.google.com/mail/?" + q.Encode()
}
