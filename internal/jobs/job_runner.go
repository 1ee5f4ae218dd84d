package jobs

import (
	"alugo-backend/internal/config"
	"alugo-backend/internal/logger"
	"alugo-backend/internal/repository/postgres"
	"alugo-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *postgres.Store
	services *Services
	config   *config.Config
}

// Services holds the service dependencies needed by jobs
type Services struct {
	Rental service.RentalService
	Email  service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once, for manual execution.
func (jr *JobRunner) RunAll() {
	jr.AutoFinalizeOverdueRentals()
	jr.SendOverdueNotices()
	jr.RepairStrandedItems()
}
