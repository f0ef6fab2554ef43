// Package commands contains the write operations of the service. Each command is
// a validated request object paired with a handler that runs it.
package commands

import (
	"errors"
	"slices"

	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand carries an order submission into the workflow. The order
// itself is untrusted; checking it is the workflow's first stage.
//
// Example:
//
//	cmd := commands.NewPlaceOrderCommand(unvalidated)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var placeErr order.PlaceOrderError
//	    errors.As(err, &placeErr) // always succeeds
//	}
type PlaceOrderCommand struct {
	order order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand copies unvalidated, so later changes by the caller do not
// reach the command.
func NewPlaceOrderCommand(unvalidated order.UnvalidatedOrder) PlaceOrderCommand {
	unvalidated.Lines = slices.Clone(unvalidated.Lines)
	return PlaceOrderCommand{
		order: unvalidated,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns a copy of the submitted order.
func (c PlaceOrderCommand) Order() order.UnvalidatedOrder {
	o := c.order
	o.Lines = slices.Clone(c.order.Lines)
	return o
}
