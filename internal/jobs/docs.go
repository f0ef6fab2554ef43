// Package jobs provides scheduled background tasks for the place-order service.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field (seconds) cron
// expressions.
//
// # Available Jobs
//
// CatalogRefreshJob reloads standard and promotion prices from the database
// into the in-memory catalog the pricing stage reads. The default schedule is
// every thirty seconds; CATALOG_REFRESH_SCHEDULE overrides it.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(catalogRefreshJob, logger)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous catalog stays in place. A failed
// initial load at start-up is not fatal.
package jobs
