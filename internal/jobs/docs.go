// Package jobs provides scheduled background tasks for the order mail service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for rejection notification delivery.
//
// # Available Jobs
//
// 1. StatusSyncJob - Polls the partner status feed for orders in production and
// runs a rejection processing pass over each fetched document
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processHandler, statusProvider, uowFactory, schedule, logger)
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
// The sync schedule is a six-field cron expression (seconds first) taken from
// configuration, e.g. "0 */5 * * * *" to poll every five minutes.
//
// # Error Handling
//
// Orders the partner feed does not know yet are skipped silently; all other
// per-order failures are logged and do not stop the remaining orders.
package jobs
