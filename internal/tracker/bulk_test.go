package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-tracker/internal/models"
	"outreach-tracker/internal/view"
)

func seedOutreachMix(f *fakeStore) {
	f.seed(
		models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme", CompanyMail: "a@acme.com", CompanyLocation: "Deira", MailSent: models.MailNotSent},
		models.Company{ClientID: "2", SerialNo: 2, CompanyName: "Globex", CompanyMail: "jobs@globex.ae", CompanyLocation: "Business Bay", MailSent: models.MailSent},
		models.Company{ClientID: "3", SerialNo: 3, CompanyName: "Initech", CompanyMail: "hr@initech.io", CompanyLocation: "Deira", MailSent: models.MailNotSent},
	)
}

func TestBulkMarkSent_MarksUnsentInCurrentView(t *testing.T) {
	f := &fakeStore{}
	seedOutreachMix(f)

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	result, err := tr.BulkMarkSent(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Zero(t, result.Failed)
	assert.Equal(t, []string{"a@acme.com", "hr@initech.io"}, result.Recipients())

	// Sequential individual updates plus one reload at the end.
	assert.Equal(t, 2, f.updateCalls)
	assert.Equal(t, 2, f.listCalls)

	for _, c := range tr.Records() {
		assert.Equal(t, models.MailSent, c.MailSent)
	}
	assert.Equal(t, 3, tr.Stats().MailSent)
}

func TestBulkMarkSent_RespectsActiveFilterAndSearch(t *testing.T) {
	f := &fakeStore{}
	seedOutreachMix(f)

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	// Narrow the view to Deira companies named Initech; only that one is
	// selected even though Acme is also unsent.
	tr.SetSearch("initech")

	result, err := tr.BulkMarkSent(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Initech", result.Items[0].CompanyName)

	records := tr.Records()
	assert.Equal(t, models.MailNotSent, records[0].MailSent, "Acme untouched")
	assert.Equal(t, models.MailSent, records[2].MailSent)
}

func TestBulkMarkSent_EmptySelectionWarnsWithoutStoreCalls(t *testing.T) {
	f := &fakeStore{}
	seedOutreachMix(f)

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))
	tr.SetFilter(view.SelectSent)

	listCallsBefore := f.listCalls
	_, err := tr.BulkMarkSent(context.Background())
	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Zero(t, f.updateCalls)
	assert.Equal(t, listCallsBefore, f.listCalls, "no reload either")
}

func TestBulkMarkSent_PartialFailureIsReportedPerItem(t *testing.T) {
	f := &fakeStore{}
	seedOutreachMix(f)
	f.failUpdateIDs = map[string]bool{"store-1": true} // Acme's update fails

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	result, err := tr.BulkMarkSent(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 updates failed")

	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Failed)
	assert.Error(t, result.Items[0].Err)
	assert.NoError(t, result.Items[1].Err)

	// No rollback: the update that succeeded stays applied, and the reload
	// at the end still ran.
	records := tr.Records()
	assert.Equal(t, models.MailNotSent, records[0].MailSent)
	assert.Equal(t, models.MailSent, records[2].MailSent)
	assert.Equal(t, StatusActive, tr.Status())
}
