package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
	logger            *slog.Logger
}

func NewJobManager(catalogRefreshJob *CatalogRefreshJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		catalogRefreshJob: catalogRefreshJob,
		logger:            logger.With("component", "job_manager"),
	}
}

// StartAll loads the price catalog once, then starts all scheduled jobs.
// A failed initial load is logged and orders are priced with the default price
// until a scheduled refresh succeeds.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.catalogRefreshJob.Refresh(ctx); err != nil {
		jm.logger.WarnContext(ctx, "Initial price catalog load failed", "error", err)
	}

	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
}
