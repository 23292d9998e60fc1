// Package tracker owns the client-side state: the authoritative record list
// last fetched from the store, the active search term and status filter, and
// the derived view and stats recomputed from them. All writes are
// pessimistic: nothing is patched in memory, every successful mutation is
// followed by a full reload, so the list always reflects the last successful
// read. The tracker is driven from a single goroutine.
package tracker

import (
	"context"
	"log"
	"strconv"
	"time"

	"outreach-tracker/internal/client"
	"outreach-tracker/internal/models"
	"outreach-tracker/internal/view"
)

// StoreStatus is the health indicator derived from the last load attempt.
type StoreStatus string

const (
	StatusChecking StoreStatus = "checking"
	StatusActive   StoreStatus = "active"
	StatusInactive StoreStatus = "inactive"
)

// Tracker sequences mutations against the store and keeps the derived view
// consistent with the authoritative set.
type Tracker struct {
	client *client.Client

	records []models.Company
	search  string
	filter  view.Selector

	filtered []models.Company
	stats    models.Stats

	loading     bool
	storeStatus StoreStatus

	subscribers []func()
}

// New creates a tracker bound to a store client. The filter starts at "all"
// and the store status at "checking" until the first load completes.
func New(c *client.Client) *Tracker {
	return &Tracker{
		client:      c,
		filter:      view.SelectAll,
		storeStatus: StatusChecking,
	}
}

// Subscribe registers fn to run after every recomputation of the derived
// view, in registration order.
func (t *Tracker) Subscribe(fn func()) {
	t.subscribers = append(t.subscribers, fn)
}

// Load replaces the authoritative set with a fresh full fetch and recomputes
// the derived view. A failure flips the store status to inactive and leaves
// the previous set in place. Load is not blocked by an in-flight mutation's
// loading flag; the mutation paths call it themselves after a write.
func (t *Tracker) Load(ctx context.Context) error {
	records, err := t.client.ListAll(ctx)
	if err != nil {
		log.Printf("Tracker: load failed: %v", err)
		t.storeStatus = StatusInactive
		t.recompute()
		return err
	}

	t.records = records
	t.storeStatus = StatusActive
	t.recompute()
	return nil
}

// SetSearch updates the search term and recomputes the derived view.
func (t *Tracker) SetSearch(term string) {
	t.search = term
	t.recompute()
}

// SetFilter updates the status filter and recomputes the derived view.
func (t *Tracker) SetFilter(filter view.Selector) {
	t.filter = filter
	t.recompute()
}

// Records returns the authoritative set from the last successful load.
func (t *Tracker) Records() []models.Company { return t.records }

// View returns the current filtered and searched projection.
func (t *Tracker) View() []models.Company { return t.filtered }

// Stats returns the aggregate counts over the full authoritative set.
func (t *Tracker) Stats() models.Stats { return t.stats }

// Status returns the store health indicator.
func (t *Tracker) Status() StoreStatus { return t.storeStatus }

// Loading reports whether a mutation is in flight.
func (t *Tracker) Loading() bool { return t.loading }

// Search returns the active search term.
func (t *Tracker) Search() string { return t.search }

// Filter returns the active status filter.
func (t *Tracker) Filter() view.Selector { return t.filter }

// Create validates the form input, assigns the client identity, serial
// number, and creation timestamp, inserts the record, and reloads. On
// failure nothing in memory changes, so the caller keeps its form state.
func (t *Tracker) Create(ctx context.Context, input FormInput) error {
	if t.loading {
		return ErrBusy
	}
	if err := input.Validate(); err != nil {
		return err
	}

	t.loading = true
	defer func() { t.loading = false }()

	now := time.Now()
	company := input.apply(models.Company{
		ClientID:  strconv.FormatInt(now.UnixMilli(), 10),
		SerialNo:  len(t.records) + 1,
		CreatedAt: now,
	})

	if _, err := t.client.Create(ctx, company); err != nil {
		log.Printf("Tracker: create failed: %v", err)
		return err
	}

	return t.Load(ctx)
}

// Update locates the record by client identity to recover its store identity
// and serial number, resends the full field set with a refreshed update
// timestamp, and reloads.
func (t *Tracker) Update(ctx context.Context, clientID string, input FormInput) error {
	if t.loading {
		return ErrBusy
	}
	if err := input.Validate(); err != nil {
		return err
	}

	existing := t.find(clientID)
	if existing == nil {
		return ErrNotFound
	}

	t.loading = true
	defer func() { t.loading = false }()

	company := input.apply(*existing)
	company.UpdatedAt = time.Now()

	if _, err := t.client.Update(ctx, existing.StoreID, company); err != nil {
		log.Printf("Tracker: update failed: %v", err)
		return err
	}

	return t.Load(ctx)
}

// Delete removes the record addressed by client identity. The operation is
// irreversible, so the caller must pass confirmed=true after asking the
// user. A record the store no longer has still reloads cleanly.
func (t *Tracker) Delete(ctx context.Context, clientID string, confirmed bool) error {
	if t.loading {
		return ErrBusy
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	existing := t.find(clientID)
	if existing == nil {
		return ErrNotFound
	}

	t.loading = true
	defer func() { t.loading = false }()

	if _, err := t.client.Delete(ctx, existing.StoreID, existing.ClientID); err != nil {
		log.Printf("Tracker: delete failed: %v", err)
		return err
	}

	return t.Load(ctx)
}

func (t *Tracker) find(clientID string) *models.Company {
	for i := range t.records {
		if t.records[i].ClientID == clientID {
			return &t.records[i]
		}
	}
	return nil
}

func (t *Tracker) recompute() {
	t.filtered = view.Apply(t.records, t.filter, t.search)
	t.stats = view.ComputeStats(t.records)
	for _, fn := range t.subscribers {
		fn()
	}
}
