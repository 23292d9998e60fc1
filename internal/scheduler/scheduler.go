package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"outreach-tracker/internal/config"
	"outreach-tracker/internal/snapshot"
	"outreach-tracker/internal/store"
)

// Scheduler runs the daily stats snapshot job.
type Scheduler struct {
	cron      *cron.Cron
	snapshot  *snapshot.Service
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(s store.Store, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		snapshot: snapshot.NewService(s),
		config:   cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Snapshot.Enabled {
		log.Println("Scheduler: daily snapshot is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Snapshot.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: starting daily snapshot job...")
		if err := s.RunNow(); err != nil {
			log.Printf("Scheduler: daily snapshot failed: %v", err)
		} else {
			log.Println("Scheduler: daily snapshot completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with daily run at %s (cron: %s)", s.config.Snapshot.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// RunNow executes the snapshot job immediately.
func (s *Scheduler) RunNow() error {
	return s.snapshot.Run(context.Background())
}

// parseDailyRunTime converts "HH:MM" to a cron spec. Malformed input falls
// back to 02:00.
func (s *Scheduler) parseDailyRunTime(runTime string) string {
	parts := strings.Split(runTime, ":")
	if len(parts) != 2 {
		log.Printf("Scheduler: invalid daily_run_time %q, using 02:00", runTime)
		return "0 2 * * *"
	}

	var hour, minute int
	if _, err := fmt.Sscanf(runTime, "%d:%d", &hour, &minute); err != nil ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		log.Printf("Scheduler: invalid daily_run_time %q, using 02:00", runTime)
		return "0 2 * * *"
	}

	return fmt.Sprintf("%d %d * * *", minute, hour)
}
