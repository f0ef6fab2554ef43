package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"placeorder/internal/jobs"

	"github.com/shopspring/decimal"
)

const (
	defaultHTTPPort       = "8080"
	defaultIdempotencyTTL = 24 * time.Hour
	defaultUnitPrice      = "10"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaBrokers            string
	KafkaEventsTopic        string
	KafkaNotificationsTopic string
	RedisAddr               string
	IdempotencyTTL          time.Duration
	AddressServiceURL       string
	CatalogRefreshSchedule  string
	DefaultUnitPrice        decimal.Decimal
	LogLevel                string
}

// LoadConfig reads the configuration from the environment. Kafka, redis and
// the address service are optional: without them events are not published,
// acknowledgments are only logged and addresses are checked locally.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	config := Config{
		HTTPPort:                env("HTTP_PORT", defaultHTTPPort),
		DBHost:                  getenv("DB_HOST"),
		DBPort:                  env("DB_PORT", "5432"),
		DBUser:                  getenv("DB_USER"),
		DBPassword:              getenv("DB_PASSWORD"),
		DBName:                  getenv("DB_NAME"),
		DBSslMode:               env("DB_SSLMODE", "disable"),
		KafkaBrokers:            getenv("KAFKA_BROKERS"),
		KafkaEventsTopic:        env("KAFKA_EVENTS_TOPIC", "placeorder.events"),
		KafkaNotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "placeorder.notifications"),
		RedisAddr:               getenv("REDIS_ADDR"),
		AddressServiceURL:       getenv("ADDRESS_SERVICE_URL"),
		CatalogRefreshSchedule:  env("CATALOG_REFRESH_SCHEDULE", jobs.DefaultCatalogRefreshSchedule),
		LogLevel:                env("LOG_LEVEL", "info"),
	}

	var errList []error

	ttl, err := time.ParseDuration(env("IDEMPOTENCY_TTL", defaultIdempotencyTTL.String()))
	if err != nil || ttl <= 0 {
		errList = append(errList, fmt.Errorf("IDEMPOTENCY_TTL must be a positive duration: %q", getenv("IDEMPOTENCY_TTL")))
	}
	config.IdempotencyTTL = ttl

	price, err := decimal.NewFromString(env("DEFAULT_UNIT_PRICE", defaultUnitPrice))
	if err != nil {
		errList = append(errList, fmt.Errorf("DEFAULT_UNIT_PRICE must be a number: %w", err))
	}
	config.DefaultUnitPrice = price

	for _, key := range []string{"DB_HOST", "DB_USER", "DB_NAME"} {
		if getenv(key) == "" {
			errList = append(errList, fmt.Errorf("%s is required", key))
		}
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
