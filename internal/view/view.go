package view

import (
	"strings"

	"outreach-tracker/internal/models"
)

// Selector narrows the list to one status bucket before the search term is
// applied. An unrecognized selector behaves as SelectAll.
type Selector string

const (
	SelectAll      Selector = "all"
	SelectSent     Selector = "sent"
	SelectPending  Selector = "pending"
	SelectNotSent  Selector = "not-sent"
	SelectSelected Selector = "selected"
	SelectRejected Selector = "rejected"

	// SelectAcknowledged is the legacy name for the selected bucket.
	SelectAcknowledged Selector = "acknowledged"
)

// Selectors lists the choices offered in the filter dropdown.
var Selectors = []Selector{
	SelectAll, SelectSent, SelectPending, SelectNotSent, SelectSelected, SelectRejected,
}

// Apply computes the derived view: the status filter runs first, then the
// search term over the filtered set. Order of the input is preserved; the
// result is always a subsequence of records.
func Apply(records []models.Company, filter Selector, search string) []models.Company {
	filtered := applyFilter(records, filter)
	return applySearch(filtered, search)
}

func applyFilter(records []models.Company, filter Selector) []models.Company {
	var pred func(*models.Company) bool

	switch filter {
	case SelectSent:
		pred = func(c *models.Company) bool { return c.MailSent == models.MailSent }
	case SelectPending:
		pred = func(c *models.Company) bool { return c.MailSent == models.MailPending }
	case SelectNotSent:
		pred = func(c *models.Company) bool { return c.MailSent == models.MailNotSent }
	case SelectSelected, SelectAcknowledged:
		pred = func(c *models.Company) bool { return c.IsInterviewed() }
	case SelectRejected:
		pred = func(c *models.Company) bool { return c.Interview == models.InterviewRejected }
	default:
		return records
	}

	filtered := make([]models.Company, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

// applySearch keeps records where any of name, location, or email contains
// the term case-insensitively, or the contact string contains it exactly.
func applySearch(records []models.Company, search string) []models.Company {
	if search == "" {
		return records
	}

	term := strings.ToLower(search)
	filtered := make([]models.Company, 0, len(records))
	for _, c := range records {
		if strings.Contains(strings.ToLower(c.CompanyName), term) ||
			strings.Contains(strings.ToLower(c.CompanyLocation), term) ||
			strings.Contains(strings.ToLower(c.CompanyMail), term) ||
			strings.Contains(c.CompanyContact, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// ComputeStats aggregates over the full authoritative set. Counts stay global
// regardless of any active filter or search.
func ComputeStats(records []models.Company) models.Stats {
	stats := models.Stats{Total: len(records)}
	for i := range records {
		switch records[i].MailSent {
		case models.MailSent:
			stats.MailSent++
		case models.MailPending:
			stats.Pending++
		}
		if records[i].IsInterviewed() {
			stats.Interviewed++
		}
	}
	return stats
}
