package address

import (
	"context"
	"strings"

	"placeorder/internal/core/domain/model/order"
)

// LocalChecker accepts every address that has a first line, a city and a
// country. It stands in for the address service when none is configured.
type LocalChecker struct{}

func NewLocalChecker() LocalChecker {
	return LocalChecker{}
}

func (LocalChecker) CheckAddress(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	if err := ctx.Err(); err != nil {
		return order.CheckedAddress{}, err
	}

	for _, required := range []string{address.AddressLine1, address.City, address.Country} {
		if strings.TrimSpace(required) == "" {
			return order.CheckedAddress{}, order.ErrInvalidFormat
		}
	}

	return order.CheckedAddress(address), nil
}
