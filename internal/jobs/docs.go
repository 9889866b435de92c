// Package jobs provides scheduled background tasks for the consolidation service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. StalledShipmentJob - Runs every minute to flag shipments whose status has
// not changed within the configured inactivity window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(stalledHandler, stalledAfter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stalled shipment job logs query failures and logs a warning per stalled
// shipment; it never mutates shipments, leaving the follow-up to operators.
package jobs
