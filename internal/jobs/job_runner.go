package jobs

import (
	"database/sql"

	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		email:  email,
		config: cfg,
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

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStalePendingRentals()
	jr.SendPickupReminders()
}
