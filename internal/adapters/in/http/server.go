// Package http exposes the place-order workflow and the price catalog over
// HTTP with echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"placeorder/internal/adapters/contracts"
	"placeorder/internal/core/application/usecases/commands"
	"placeorder/internal/core/application/usecases/queries"
	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/ports"
	"placeorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const internalErrorCode = "InternalError"

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) ([]events.PlaceOrderEvent, error)
}

type PriceCatalogHandler interface {
	Handle(ctx context.Context, query queries.GetPriceCatalogQuery) (queries.GetPriceCatalogQueryResponse, error)
}

type SetProductPriceHandler interface {
	Handle(ctx context.Context, cmd commands.SetProductPriceCommand) error
}

type ReplacePromotionHandler interface {
	Handle(ctx context.Context, cmd commands.ReplacePromotionCommand) error
}

// CatalogRefresher reloads the in-memory price catalog.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Dependencies are the use cases the server dispatches to. Refresher may be
// nil, in which case catalog changes apply from the next scheduled refresh.
type Dependencies struct {
	PlaceOrder       PlaceOrderHandler
	Publisher        ports.EventPublisher
	GetCatalog       PriceCatalogHandler
	SetProductPrice  SetProductPriceHandler
	ReplacePromotion ReplacePromotionHandler
	Refresher        CatalogRefresher
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	deps    Dependencies
	metrics *metrics.ServerMetrics
	logger  *slog.Logger
}

func NewServer(deps Dependencies, m *metrics.ServerMetrics, logger *slog.Logger) *Server {
	return &Server{
		deps:    deps,
		metrics: m,
		logger:  logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders. The events of a placed order are
// published after the workflow; a publishing failure is logged and does not
// change the response.
func (s *Server) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var form contracts.OrderFormDto
	if err := c.Bind(&form); err != nil {
		s.countOrder(order.ValidationErrorCode)
		return c.JSON(http.StatusBadRequest, contracts.PlaceOrderErrorDto{
			Code:    order.ValidationErrorCode,
			Message: "invalid request body",
		})
	}

	placed, err := s.deps.PlaceOrder.Handle(ctx, commands.NewPlaceOrderCommand(form.ToUnvalidatedOrder()))
	if err != nil {
		var placeErr order.PlaceOrderError
		if !errors.As(err, &placeErr) {
			s.logger.ErrorContext(ctx, "Place order failed unexpectedly", "error", err)
			return c.JSON(http.StatusInternalServerError, contracts.PlaceOrderErrorDto{
				Code:    internalErrorCode,
				Message: "failed to place order",
			})
		}
		s.countOrder(placeErr.Code())
		return c.JSON(statusFor(placeErr), contracts.FromPlaceOrderError(placeErr))
	}

	s.countOrder(metrics.OutcomePlaced)

	if err = s.deps.Publisher.Publish(ctx, placed); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish order events",
			"order_id", form.OrderID,
			"error", err,
		)
	}

	return c.JSON(http.StatusOK, contracts.FromPlaceOrderEvents(placed))
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	catalog, err := s.deps.GetCatalog.Handle(ctx, queries.NewGetPriceCatalogQuery())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read price catalog", "error", err)
		return c.JSON(http.StatusInternalServerError, contracts.PlaceOrderErrorDto{
			Code:    internalErrorCode,
			Message: "failed to retrieve catalog",
		})
	}

	return c.JSON(http.StatusOK, contracts.FromPriceCatalog(catalog))
}

// SetProductPrice handles PUT /api/v1/catalog/products/:code.
func (s *Server) SetProductPrice(c echo.Context) error {
	var body contracts.SetProductPriceDto
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSetProductPriceCommand(c.Param("code"), body.Price)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.deps.SetProductPrice.Handle(c.Request().Context(), cmd); err != nil {
		return s.catalogWriteFailed(c, err)
	}

	s.refreshCatalog(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// ReplacePromotion handles PUT /api/v1/catalog/promotions/:code.
func (s *Server) ReplacePromotion(c echo.Context) error {
	var body contracts.ReplacePromotionDto
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewReplacePromotionCommand(c.Param("code"), body.Prices)
	if err != nil {
		return badRequest(c, err.Error())
	}

	err = s.deps.ReplacePromotion.Handle(c.Request().Context(), cmd)
	if errors.Is(err, commands.ErrProductIsNotInCatalog) {
		return c.JSON(http.StatusUnprocessableEntity, contracts.PlaceOrderErrorDto{
			Code:    order.ValidationErrorCode,
			Message: err.Error(),
		})
	}
	if err != nil {
		return s.catalogWriteFailed(c, err)
	}

	s.refreshCatalog(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) catalogWriteFailed(c echo.Context, err error) error {
	s.logger.ErrorContext(c.Request().Context(), "Failed to update price catalog", "error", err)
	return c.JSON(http.StatusInternalServerError, contracts.PlaceOrderErrorDto{
		Code:    internalErrorCode,
		Message: "failed to update catalog",
	})
}

func (s *Server) refreshCatalog(ctx context.Context) {
	if s.deps.Refresher == nil {
		return
	}
	if err := s.deps.Refresher.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "Catalog saved but refresh failed", "error", err)
	}
}

func (s *Server) countOrder(outcome string) {
	if s.metrics != nil {
		s.metrics.OrdersPlaced.WithLabelValues(outcome).Inc()
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, contracts.PlaceOrderErrorDto{
		Code:    order.ValidationErrorCode,
		Message: message,
	})
}

func statusFor(err order.PlaceOrderError) int {
	switch err.(type) {
	case *order.ValidationError:
		return http.StatusBadRequest
	case *order.PricingError:
		return http.StatusUnprocessableEntity
	case *order.RemoteServiceError:
		return http.StatusBadGateway
	default:
		panic("unexpected place order error " + err.Code())
	}
}
