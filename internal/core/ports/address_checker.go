package ports

import (
	"context"

	"placeorder/internal/core/domain/model/order"
)

// AddressChecker confirms that an address exists.
type AddressChecker interface {
	// CheckAddress returns order.ErrAddressNotFound or order.ErrInvalidFormat
	// (possibly wrapped) when the address was checked and rejected. Any other
	// error means the check itself failed; implementations that know their
	// endpoint may return an *order.RemoteServiceError directly.
	CheckAddress(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}
