package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-tracker/internal/client"
	"outreach-tracker/internal/models"
	"outreach-tracker/internal/view"
)

// fakeStore serves the /companies wire contract from memory so the tracker
// can be exercised end to end through the real HTTP client.
type fakeStore struct {
	docs   []models.Company
	nextID int

	failUpdateIDs map[string]bool

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeStore) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.listCalls++
			sorted := make([]models.Company, len(f.docs))
			copy(sorted, f.docs)
			sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SerialNo < sorted[j].SerialNo })
			_ = json.NewEncoder(w).Encode(sorted)

		case http.MethodPost:
			f.createCalls++
			var c models.Company
			_ = json.NewDecoder(r.Body).Decode(&c)
			f.nextID++
			c.StoreID = fmt.Sprintf("store-%d", f.nextID)
			f.docs = append(f.docs, c)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "insertedId": c.StoreID})

		case http.MethodPut:
			f.updateCalls++
			var c models.Company
			_ = json.NewDecoder(r.Body).Decode(&c)
			if f.failUpdateIDs[c.StoreID] {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"error": "Failed to update company", "details": "boom"})
				return
			}
			modified := 0
			for i := range f.docs {
				if f.docs[i].StoreID == c.StoreID {
					f.docs[i] = c
					modified = 1
				}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "modifiedCount": modified})

		case http.MethodDelete:
			f.deleteCalls++
			id := r.URL.Query().Get("_id")
			deleted := 0
			kept := f.docs[:0]
			for _, doc := range f.docs {
				if doc.StoreID == id {
					deleted++
					continue
				}
				kept = append(kept, doc)
			}
			f.docs = kept
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "deletedCount": deleted})
		}
	})
}

func (f *fakeStore) seed(companies ...models.Company) {
	for _, c := range companies {
		f.nextID++
		c.StoreID = fmt.Sprintf("store-%d", f.nextID)
		f.docs = append(f.docs, c)
	}
}

func newTestTracker(t *testing.T, f *fakeStore) *Tracker {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return New(client.NewClient(srv.URL))
}

func validInput() FormInput {
	return FormInput{
		Name:     "Acme",
		Detail:   "Staffing agency",
		Contact:  "12345",
		Email:    "a@acme.com",
		Location: "Deira",
	}
}

func TestLoad_PopulatesViewAndStats(t *testing.T) {
	f := &fakeStore{}
	f.seed(
		models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme", MailSent: models.MailNotSent},
		models.Company{ClientID: "2", SerialNo: 2, CompanyName: "Globex", MailSent: models.MailSent},
	)

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	assert.Equal(t, StatusActive, tr.Status())
	assert.Len(t, tr.Records(), 2)
	assert.Len(t, tr.View(), 2)
	assert.Equal(t, 2, tr.Stats().Total)
	assert.Equal(t, 1, tr.Stats().MailSent)
}

func TestLoad_FailureFlipsStatusAndKeepsRecords(t *testing.T) {
	f := &fakeStore{}
	f.seed(models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme"})

	srv := httptest.NewServer(f.handler())
	tr := New(client.NewClient(srv.URL))
	require.NoError(t, tr.Load(context.Background()))
	require.Len(t, tr.Records(), 1)

	srv.Close()
	err := tr.Load(context.Background())
	assert.ErrorIs(t, err, client.ErrStoreUnavailable)
	assert.Equal(t, StatusInactive, tr.Status())
	assert.Len(t, tr.Records(), 1, "last successful read stays visible")
}

func TestCreate_RoundTrip(t *testing.T) {
	f := &fakeStore{}
	f.seed(models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Globex"})

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	require.NoError(t, tr.Create(context.Background(), validInput()))

	// Write then full reload, nothing patched locally.
	require.Len(t, tr.Records(), 2)
	created := tr.Records()[1]
	assert.Equal(t, 2, created.SerialNo, "serialNo is pre-create count + 1")
	assert.NotEmpty(t, created.ClientID)
	assert.NotEmpty(t, created.StoreID)
	assert.Equal(t, "Acme", created.CompanyName)
	assert.Equal(t, models.MailNotSent, created.MailSent)
	assert.Equal(t, models.InterviewNoIdea, created.Interview)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, tr.Loading())
}

func TestCreate_ValidationDeclinedBeforeAnyStoreCall(t *testing.T) {
	f := &fakeStore{}
	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	err := tr.Create(context.Background(), FormInput{Name: "Acme"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "company detail")
	assert.Zero(t, f.createCalls)
}

func TestUpdate_PreservesIdentityAndSerial(t *testing.T) {
	f := &fakeStore{}
	f.seed(models.Company{
		ClientID: "1700000000000", SerialNo: 7,
		CompanyName: "Acme", CompanyDetail: "Old detail",
		CompanyContact: "12345", CompanyMail: "a@acme.com", CompanyLocation: "Deira",
		MailSent: models.MailNotSent, Interview: models.InterviewNoIdea,
	})

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))
	original := tr.Records()[0]

	input := validInput()
	input.Detail = "New detail"
	input.MailSent = models.MailPending
	require.NoError(t, tr.Update(context.Background(), "1700000000000", input))

	updated := tr.Records()[0]
	assert.Equal(t, original.StoreID, updated.StoreID)
	assert.Equal(t, original.ClientID, updated.ClientID)
	assert.Equal(t, 7, updated.SerialNo)
	assert.Equal(t, "New detail", updated.CompanyDetail)
	assert.Equal(t, models.MailPending, updated.MailSent)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestUpdate_UnknownClientID(t *testing.T) {
	f := &fakeStore{}
	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	err := tr.Update(context.Background(), "nope", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.updateCalls)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	f := &fakeStore{}
	f.seed(models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme"})

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))

	err := tr.Delete(context.Background(), "1", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, f.deleteCalls)

	require.NoError(t, tr.Delete(context.Background(), "1", true))
	assert.Empty(t, tr.Records())

	// The record is gone from the authoritative set, so a second delete
	// fails the local lookup instead of reaching the store.
	err = tr.Delete(context.Background(), "1", true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, f.deleteCalls)
}

func TestDelete_LeavesSerialGaps(t *testing.T) {
	f := &fakeStore{}
	f.seed(
		models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme"},
		models.Company{ClientID: "2", SerialNo: 2, CompanyName: "Globex"},
		models.Company{ClientID: "3", SerialNo: 3, CompanyName: "Initech"},
	)

	tr := newTestTracker(t, f)
	require.NoError(t, tr.Load(context.Background()))
	require.NoError(t, tr.Delete(context.Background(), "2", true))

	serials := []int{tr.Records()[0].SerialNo, tr.Records()[1].SerialNo}
	assert.Equal(t, []int{1, 3}, serials, "no resequencing on delete")
}

func TestSetSearchAndFilter_RecomputeAndNotify(t *testing.T) {
	f := &fakeStore{}
	f.seed(
		models.Company{ClientID: "1", SerialNo: 1, CompanyName: "Acme", CompanyLocation: "Deira", MailSent: models.MailNotSent},
		models.Company{ClientID: "2", SerialNo: 2, CompanyName: "Globex", CompanyLocation: "Business Bay", MailSent: models.MailSent},
	)

	tr := newTestTracker(t, f)
	notified := 0
	tr.Subscribe(func() { notified++ })

	require.NoError(t, tr.Load(context.Background()))
	assert.Equal(t, 1, notified)

	tr.SetFilter(view.SelectSent)
	require.Len(t, tr.View(), 1)
	assert.Equal(t, "Globex", tr.View()[0].CompanyName)

	tr.SetSearch("acme")
	assert.Empty(t, tr.View(), "search applies after the status filter")
	assert.Equal(t, 3, notified)

	// Stats ignore the active filter and search.
	assert.Equal(t, 2, tr.Stats().Total)
}
