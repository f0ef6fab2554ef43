package http

import (
	"strconv"
	"time"

	"placeorder/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with every route of the service.
// validator is applied to the API routes only.
func NewEcho(s *Server, validator echo.MiddlewareFunc, m *metrics.ServerMetrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if m != nil {
		e.Use(Metrics(m))
	}

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	if validator != nil {
		api.Use(validator)
	}
	api.POST("/orders", s.PlaceOrder)
	api.GET("/catalog", s.GetCatalog)
	api.PUT("/catalog/products/:code", s.SetProductPrice)
	api.PUT("/catalog/promotions/:code", s.ReplacePromotion)

	return e
}

// Metrics counts requests by route and status and records their latency.
func Metrics(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			m.Requests.WithLabelValues(route, strconv.Itoa(c.Response().Status)).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}
