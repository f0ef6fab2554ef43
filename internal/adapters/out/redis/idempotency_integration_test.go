package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	placeredis "placeorder/internal/adapters/out/redis"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type StoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *StoreIntegrationTestSuite) TestSeen_FirstCallMarks() {
	ctx := context.Background()
	store := placeredis.NewStore(suite.client, time.Minute)
	key := store.Key("order-1")

	seen, err := store.Seen(ctx, key)
	suite.Require().NoError(err)
	suite.False(seen)

	seen, err = store.Seen(ctx, key)
	suite.Require().NoError(err)
	suite.True(seen)

	seen, err = store.Seen(ctx, store.Key("order-2"))
	suite.Require().NoError(err)
	suite.False(seen)
}

func (suite *StoreIntegrationTestSuite) TestSeen_MarkExpires() {
	ctx := context.Background()
	store := placeredis.NewStore(suite.client, time.Minute)
	key := store.Key("order-1")

	_, err := store.Seen(ctx, key)
	suite.Require().NoError(err)

	ttl, err := suite.client.TTL(ctx, key).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *StoreIntegrationTestSuite) TestForget_AllowsNextAttempt() {
	ctx := context.Background()
	store := placeredis.NewStore(suite.client, time.Minute)
	key := store.Key("order-1")

	_, err := store.Seen(ctx, key)
	suite.Require().NoError(err)
	suite.Require().NoError(store.Forget(ctx, key))

	seen, err := store.Seen(ctx, key)
	suite.Require().NoError(err)
	suite.False(seen)
}

func (suite *StoreIntegrationTestSuite) TestKey() {
	store := placeredis.NewStore(suite.client, time.Minute)

	suite.Equal("placeorder:published:order-1", store.Key("order-1"))
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationTestSuite))
}
