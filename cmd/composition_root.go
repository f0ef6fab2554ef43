package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpin "placeorder/internal/adapters/in/http"
	"placeorder/internal/adapters/out/address"
	"placeorder/internal/adapters/out/catalog"
	kafkaout "placeorder/internal/adapters/out/kafka"
	"placeorder/internal/adapters/out/notification"
	"placeorder/internal/adapters/out/postgres"
	"placeorder/internal/adapters/out/postgres/productrepo"
	redisout "placeorder/internal/adapters/out/redis"
	"placeorder/internal/core/application/usecases/commands"
	"placeorder/internal/core/application/usecases/queries"
	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/services"
	"placeorder/internal/core/ports"
	"placeorder/internal/jobs"
	"placeorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived adapters and builds the handlers on
// top of them. Close releases the broker and cache connections.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	metrics    *metrics.ServerMetrics
	uowFactory *postgres.GormUnitOfWorkFactory
	snapshot   *catalog.Snapshot
	refreshJob *jobs.CatalogRefreshJob
	closers    []io.Closer
}

// NewCompositionRoot registers the service metrics with registerer, so it must
// be called once per registerer.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	defaultPrice, err := kernel.NewPrice(config.DefaultUnitPrice)
	if err != nil {
		return nil, fmt.Errorf("default unit price: %w", err)
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		metrics:    metrics.NewServerMetrics(registerer),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		snapshot:   catalog.NewSnapshot(defaultPrice),
	}
	c.refreshJob = jobs.NewCatalogRefreshJob(
		c.CreateGetPriceCatalogQueryHandler(),
		c.snapshot,
		config.CatalogRefreshSchedule,
		c.metrics,
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	renderer, err := notification.NewTemplateRenderer(c.logger)
	if err != nil {
		return commands.PlaceOrderCommandHandler{}, err
	}

	return commands.NewPlaceOrderCommandHandler(
		productrepo.NewGormProductRepository(c.gormDB),
		c.CreateAddressChecker(),
		services.GetPricingFunction(c.snapshot.StandardPrices, c.snapshot.PromotionPrices),
		services.CalculateShippingCost,
		renderer,
		c.CreateNotificationSender(),
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateGetPriceCatalogQueryHandler() queries.GetPriceCatalogQueryHandler {
	return queries.NewGetPriceCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSetProductPriceCommandHandler() commands.SetProductPriceCommandHandler {
	return commands.NewSetProductPriceCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateReplacePromotionCommandHandler() commands.ReplacePromotionCommandHandler {
	return commands.NewReplacePromotionCommandHandler(c.uowFactory)
}

// CreateAddressChecker uses the remote address service when one is configured.
func (c *CompositionRoot) CreateAddressChecker() ports.AddressChecker {
	if c.config.AddressServiceURL == "" {
		c.logger.Warn("ADDRESS_SERVICE_URL is not set, addresses are checked locally")
		return address.NewLocalChecker()
	}
	return address.NewHTTPChecker(c.config.AddressServiceURL, nil)
}

// CreateNotificationSender mails acknowledgments through kafka when brokers
// are configured and only logs them otherwise.
func (c *CompositionRoot) CreateNotificationSender() ports.NotificationSender {
	brokers := kafkaout.ParseBrokers(c.config.KafkaBrokers)
	if len(brokers) == 0 {
		return notification.NewLogSender(c.logger)
	}

	writer := kafkaout.NewWriter(brokers, c.config.KafkaNotificationsTopic)
	c.closers = append(c.closers, writer)
	return kafkaout.NewNotificationSender(writer, c.logger)
}

// CreateEventPublisher returns a kafka publisher, guarded against duplicate
// orders when redis is configured. Without brokers events are dropped.
func (c *CompositionRoot) CreateEventPublisher() ports.EventPublisher {
	brokers := kafkaout.ParseBrokers(c.config.KafkaBrokers)
	if len(brokers) == 0 {
		c.logger.Warn("KAFKA_BROKERS is not set, order events are not published")
		return discardPublisher{}
	}

	writer := kafkaout.NewWriter(brokers, c.config.KafkaEventsTopic)
	c.closers = append(c.closers, writer)

	var guard kafkaout.IdempotencyGuard
	if c.config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
		c.closers = append(c.closers, rdb)
		guard = redisout.NewStore(rdb, c.config.IdempotencyTTL)
	}

	return kafkaout.NewEventPublisher(writer, guard, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.refreshJob, c.logger)
}

// CreateHTTPServer builds the echo instance with request validation against
// the embedded API description.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = httpin.RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := httpin.RequestValidator(doc, c.metrics)
	if err != nil {
		return nil, err
	}

	placeOrder, err := c.CreatePlaceOrderCommandHandler()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Dependencies{
		PlaceOrder:       placeOrder,
		Publisher:        c.CreateEventPublisher(),
		GetCatalog:       c.CreateGetPriceCatalogQueryHandler(),
		SetProductPrice:  c.CreateSetProductPriceCommandHandler(),
		ReplacePromotion: c.CreateReplacePromotionCommandHandler(),
		Refresher:        c.refreshJob,
	}, c.metrics, c.logger)

	return httpin.NewEcho(server, validator, c.metrics), nil
}

func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closer := range c.closers {
		errList = append(errList, closer.Close())
	}
	c.closers = nil
	return errors.Join(errList...)
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, []events.PlaceOrderEvent) error {
	return nil
}
