package postgres_test

import (
	"context"
	"errors"
	"testing"

	postgres_adapter "placeorder/internal/adapters/out/postgres"
	"placeorder/internal/adapters/out/postgres/productrepo"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(productrepo.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, promotion_prices").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotNil(uow1)
	suite.NotNil(uow2)
	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CatalogRepository().SaveProduct(ctx, widget(suite), price(suite, "2.50")))
	suite.Require().NoError(uow.CatalogRepository().SavePromotionPrice(
		ctx, "SUMMER", widget(suite), price(suite, "1.75")))

	suite.Equal(int64(0), suite.count("products"), "not visible outside the transaction before commit")

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count("products"))
	suite.Equal(int64(1), suite.count("promotion_prices"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().CatalogRepository().SavePromotionPrice(
		ctx, "SUMMER", widget(suite), price(suite, "1.75")))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CatalogRepository().DeletePromotion(ctx, "SUMMER"))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(1), suite.count("promotion_prices"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterRejectedWrite() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CatalogRepository().SaveProduct(ctx, widget(suite), price(suite, "2.50")))

	err := uow.CatalogRepository().SaveProduct(ctx, nil, price(suite, "2.50"))
	suite.Require().Error(err)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Equal(int64(0), suite.count("products"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.CatalogRepository().SaveProduct(ctx, widget(suite), price(suite, "2.50"))

	suite.Require().NoError(err)
	suite.Equal(int64(1), suite.count("products"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.factory.Create().Begin(ctx)

	suite.Require().Error(err)
	suite.True(errors.Is(err, context.Canceled))
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.db.Table(table).Count(&n).Error)
	return n
}

func widget(suite *UnitOfWorkIntegrationTestSuite) kernel.ProductCode {
	code, err := kernel.NewProductCode("W1234")
	suite.Require().NoError(err)
	return code
}

func price(suite *UnitOfWorkIntegrationTestSuite, s string) kernel.Price {
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	suite.Require().NoError(err)
	return p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
