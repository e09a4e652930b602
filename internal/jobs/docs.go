// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. MatchingRetryJob - Sweeps unassigned delivery orders every 30 seconds,
// runs a matching round for each with a progressively wider search radius,
// and flags orders for manual assignment once automatic attempts run out.
// Flagged orders stay on the worklist for operators but are skipped by
// subsequent sweeps.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(retryHandler, uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed matching
// round for one order never blocks the rest of the worklist.
package jobs
