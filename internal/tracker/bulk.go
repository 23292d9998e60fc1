package tracker

import (
	"context"
	"fmt"
	"log"
	"time"

	"outreach-tracker/internal/models"
)

// BulkItem is the outcome of one update in a bulk transition.
type BulkItem struct {
	ClientID    string
	CompanyName string
	Email       string
	Err         error
}

// BulkResult reports a bulk transition item by item, so a partial failure is
// visible instead of being folded into a single boolean.
type BulkResult struct {
	Items  []BulkItem
	Failed int
}

// Recipients returns the email addresses of the selected records.
func (r BulkResult) Recipients() []string {
	emails := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		emails = append(emails, item.Email)
	}
	return emails
}

// BulkMarkSent selects the Not Sent records of the currently filtered view
// and rewrites each one with outreach status Sent, as sequential individual
// updates. There is no rollback: records updated before a mid-loop failure
// stay updated. One reload runs at the end regardless.
//
// An empty selection aborts with ErrNoRecipients before any store call.
func (t *Tracker) BulkMarkSent(ctx context.Context) (BulkResult, error) {
	if t.loading {
		return BulkResult{}, ErrBusy
	}

	var selected []models.Company
	for _, c := range t.filtered {
		if c.MailSent == models.MailNotSent {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return BulkResult{}, ErrNoRecipients
	}

	t.loading = true
	defer func() { t.loading = false }()

	result := BulkResult{Items: make([]BulkItem, 0, len(selected))}
	for _, c := range selected {
		updated := c
		updated.MailSent = models.MailSent
		updated.UpdatedAt = time.Now()

		_, err := t.client.Update(ctx, c.StoreID, updated)
		if err != nil {
			log.Printf("Tracker: bulk update failed for %s (%s): %v", c.CompanyName, c.ClientID, err)
			result.Failed++
		}
		result.Items = append(result.Items, BulkItem{
			ClientID:    c.ClientID,
			CompanyName: c.CompanyName,
			Email:       c.CompanyMail,
			Err:         err,
		})
	}

	loadErr := t.Load(ctx)

	if result.Failed > 0 {
		return result, fmt.Errorf("%d of %d updates failed", result.Failed, len(result.Items))
	}
	return result, loadErr
}
