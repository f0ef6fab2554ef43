package kernel

import (
	"errors"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"
)

var (
	ErrOrderIDIsNotConstructed     = errors.New("OrderID must be created via NewOrderID constructor")
	ErrOrderLineIDIsNotConstructed = errors.New("OrderLineID must be created via NewOrderLineID constructor")
)

// OrderID identifies an order. It is supplied by the caller, so two runs of the
// workflow over the same input produce the same identifier.
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

func NewOrderID(s string) (OrderID, error) {
	value, err := constrained.String("OrderId", string50MaxLength, s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

func (id OrderID) Value() string {
	return id.value
}

func (id OrderID) String() string {
	return id.value
}

// OrderLineID identifies a line within an order.
type OrderLineID struct {
	value string
	guard guard.ConstructorGuard
}

func NewOrderLineID(s string) (OrderLineID, error) {
	value, err := constrained.String("OrderLineId", string50MaxLength, s)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (id OrderLineID) Validate() error {
	return id.guard.Validate(ErrOrderLineIDIsNotConstructed)
}

func (id OrderLineID) Value() string {
	return id.value
}

func (id OrderLineID) String() string {
	return id.value
}
