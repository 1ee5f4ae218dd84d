package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"alugo-backend/internal/jobs"
	"alugo-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.AutoFinalizeOverdueRentals, s.jobs.AutoFinalizeOverdueRentals); err != nil {
		logger.Error("Failed to register AutoFinalizeOverdueRentals job", "error", err)
	}

	if _, err := s.cron.AddFunc(cfg.SendOverdueNotices, s.jobs.SendOverdueNotices); err != nil {
		logger.Error("Failed to register SendOverdueNotices job", "error", err)
	}

	if _, err := s.cron.AddFunc(cfg.RepairStrandedItems, s.jobs.RepairStrandedItems); err != nil {
		logger.Error("Failed to register RepairStrandedItems job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
