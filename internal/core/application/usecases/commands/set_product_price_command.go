package commands

import (
	"errors"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetProductPriceCommandIsNotConstructed = errors.New(
	"SetProductPriceCommand must be created via NewSetProductPriceCommand constructor",
)

// SetProductPriceCommand adds a product to the catalog or changes its standard
// unit price.
type SetProductPriceCommand struct { //nolint:recvcheck //using for validation
	code  kernel.ProductCode
	price kernel.Price

	guard guard.ConstructorGuard
}

func NewSetProductPriceCommand(code string, price decimal.Decimal) (SetProductPriceCommand, error) {
	cmd := SetProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setPrice(price),
	); err != nil {
		return SetProductPriceCommand{}, err
	}

	return cmd, nil
}

func (c SetProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetProductPriceCommandIsNotConstructed)
}

func (c SetProductPriceCommand) Code() kernel.ProductCode {
	return c.code
}

func (c SetProductPriceCommand) Price() kernel.Price {
	return c.price
}

func (c *SetProductPriceCommand) setCode(s string) error {
	code, err := kernel.NewProductCode(s)
	if err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *SetProductPriceCommand) setPrice(d decimal.Decimal) error {
	price, err := kernel.NewPrice(d)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
