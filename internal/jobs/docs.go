// Package jobs provides scheduled background tasks for the inventory system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the inventory service.
//
// # Available Jobs
//
// 1. DrugExpiryJob - Runs hourly to flag drugs whose expiry date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireDrugsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 0 * * * *" which means it runs
// at the top of every hour. The sweep is idempotent: a drug already flagged
// as Expired is skipped, so overlapping or repeated runs are harmless.
//
// # Error Handling
//
// - Expiry job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
