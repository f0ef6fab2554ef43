package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"placeorder/internal/core/application/usecases/queries"
	"placeorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultCatalogRefreshSchedule reloads prices every thirty seconds.
const DefaultCatalogRefreshSchedule = "*/30 * * * * *"

const refreshTimeout = 10 * time.Second

type PriceCatalogLoader interface {
	Handle(ctx context.Context, query queries.GetPriceCatalogQuery) (queries.GetPriceCatalogQueryResponse, error)
}

type PriceCatalogSnapshot interface {
	Replace(catalog queries.GetPriceCatalogQueryResponse)
	Size() (products, promotions int)
}

// CatalogRefreshJob reloads the in-memory price catalog from the database on a
// cron schedule. A failed load keeps the previous catalog in place.
type CatalogRefreshJob struct {
	// refreshMu serialises load-and-replace, so a load that started earlier
	// never overwrites the catalog of one that started later.
	refreshMu sync.Mutex

	loader   PriceCatalogLoader
	snapshot PriceCatalogSnapshot
	schedule string
	metrics  *metrics.ServerMetrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob takes a six-field cron schedule (with seconds). m may
// be nil.
func NewCatalogRefreshJob(
	loader PriceCatalogLoader,
	snapshot PriceCatalogSnapshot,
	schedule string,
	m *metrics.ServerMetrics,
	logger *slog.Logger,
) *CatalogRefreshJob {
	if schedule == "" {
		schedule = DefaultCatalogRefreshSchedule
	}
	return &CatalogRefreshJob{
		loader:   loader,
		snapshot: snapshot,
		schedule: schedule,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

// Refresh loads the catalog once and installs it. Concurrent calls run one
// after another, so the catalog installed last is the one loaded last.
func (j *CatalogRefreshJob) Refresh(ctx context.Context) error {
	j.refreshMu.Lock()
	defer j.refreshMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	catalog, err := j.loader.Handle(ctx, queries.NewGetPriceCatalogQuery())
	if err != nil {
		j.count("error")
		return err
	}

	j.snapshot.Replace(catalog)
	j.count("ok")

	products, promotions := j.snapshot.Size()
	j.logger.DebugContext(ctx, "Price catalog refreshed", "products", products, "promotions", promotions)
	return nil
}

// Start schedules Refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh job failed, keeping previous catalog", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

func (j *CatalogRefreshJob) count(result string) {
	if j.metrics != nil {
		j.metrics.CatalogRefresh.WithLabelValues(result).Inc()
	}
}
