package commands

import (
	"context"
	"errors"
	"log/slog"

	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"
	"placeorder/internal/core/ports"
)

// PlaceOrderCommandHandler runs the place-order workflow:
//
//	validate -> price -> add shipping (VIP override) -> acknowledge -> create events
//
// The stages run in sequence and the first failure ends the run; no events are
// returned alongside an error. The handler keeps no state between orders, so a
// single instance serves concurrent requests.
//
// Example:
//
//	handler := commands.NewPlaceOrderCommandHandler(
//	    catalog, addressChecker,
//	    services.GetPricingFunction(standardPrices, promotionPrices),
//	    services.CalculateShippingCost,
//	    renderer, sender, logger,
//	)
//	placed, err := handler.Handle(ctx, commands.NewPlaceOrderCommand(unvalidated))
type PlaceOrderCommandHandler struct {
	validator         services.OrderValidator
	resolvePricing    services.PricingResolver
	calculateShipping services.ShippingCostCalculator
	renderer          ports.LetterRenderer
	sender            ports.NotificationSender
	logger            *slog.Logger
}

func NewPlaceOrderCommandHandler(
	catalog ports.ProductCatalog,
	addresses ports.AddressChecker,
	resolvePricing services.PricingResolver,
	calculateShipping services.ShippingCostCalculator,
	renderer ports.LetterRenderer,
	sender ports.NotificationSender,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		validator:         services.NewOrderValidator(catalog, addresses),
		resolvePricing:    resolvePricing,
		calculateShipping: calculateShipping,
		renderer:          renderer,
		sender:            sender,
		logger:            logger.With("component", "place_order_handler"),
	}
}

// Handle returns the events of the placed order. A non-nil error is always an
// order.PlaceOrderError.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]events.PlaceOrderEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, order.NewValidationError(err.Error())
	}

	unvalidated := cmd.Order()
	logger := h.logger.With("order_id", unvalidated.OrderID)

	validated, err := h.validator.Validate(ctx, unvalidated)
	if err != nil {
		return nil, h.fail(ctx, logger, "validate", asPlaceOrderError(err, order.NewValidationError))
	}

	priced, err := services.PriceOrder(h.resolvePricing, validated)
	if err != nil {
		return nil, h.fail(ctx, logger, "price", asPlaceOrderError(err, order.NewPricingError))
	}

	withShipping := services.FreeVipShipping(services.AddShippingInfo(h.calculateShipping, priced))

	acknowledgment := services.Acknowledge(ctx, h.renderer, h.sender, withShipping)
	if acknowledgment == nil {
		logger.WarnContext(ctx, "Order acknowledgment was not sent")
	}

	placed := services.CreateEvents(priced, acknowledgment)
	logger.InfoContext(ctx, "Order placed",
		"events", len(placed),
		"amount_to_bill", priced.AmountToBill().String(),
		"shipping_cost", withShipping.ShippingInfo().Cost().String(),
	)

	return placed, nil
}

func (h PlaceOrderCommandHandler) fail(
	ctx context.Context,
	logger *slog.Logger,
	stage string,
	err order.PlaceOrderError,
) order.PlaceOrderError {
	attrs := []any{"stage", stage, "code", err.Code(), "error", err}
	var remote *order.RemoteServiceError
	if errors.As(err, &remote) {
		logger.ErrorContext(ctx, "Order rejected", attrs...)
	} else {
		logger.InfoContext(ctx, "Order rejected", attrs...)
	}
	return err
}

// asPlaceOrderError keeps an error already in the taxonomy and wraps anything
// else with the stage's own variant.
func asPlaceOrderError[E order.PlaceOrderError](err error, wrap func(message string) E) order.PlaceOrderError {
	var placeErr order.PlaceOrderError
	if errors.As(err, &placeErr) {
		return placeErr
	}
	return wrap(err.Error())
}
