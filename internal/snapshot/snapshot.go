// Package snapshot records one aggregate-stats row per day so outreach
// progress stays visible after records are edited or deleted.
package snapshot

import (
	"context"
	"log"
	"time"

	"outreach-tracker/internal/models"
	"outreach-tracker/internal/store"
	"outreach-tracker/internal/view"
)

// Service computes and persists outreach stats snapshots.
type Service struct {
	store store.Store
}

// NewService creates a new snapshot service
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Run lists the full collection, computes the same stats the client renders,
// and upserts today's snapshot row.
func (s *Service) Run(ctx context.Context) error {
	companies, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range companies {
		companies[i].Normalize()
	}

	stats := view.ComputeStats(companies)
	snap := models.OutreachSnapshot{
		SnapshotAt:  time.Now().Truncate(24 * time.Hour),
		Total:       stats.Total,
		MailSent:    stats.MailSent,
		Interviewed: stats.Interviewed,
		Pending:     stats.Pending,
	}

	if err := s.store.SaveSnapshot(ctx, snap); err != nil {
		return err
	}

	log.Printf("Snapshot: recorded total=%d mail_sent=%d interviewed=%d pending=%d",
		snap.Total, snap.MailSent, snap.Interviewed, snap.Pending)
	return nil
}
