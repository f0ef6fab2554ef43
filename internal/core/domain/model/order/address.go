package order

import (
	"errors"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/guard"
)

// Errors an address checker reports for addresses it could check. Any other
// error from a checker means the checker itself failed.
var (
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidFormat   = errors.New("bad format")
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

const countryUS = "US"

// CheckedAddress is an address the address service has confirmed exists. Its
// fields are still unconstrained strings.
type CheckedAddress UnvalidatedAddress

// Address is a checked address whose fields satisfy the constrained types.
type Address struct {
	addressLine1 kernel.String50
	addressLine2 *kernel.String50
	addressLine3 *kernel.String50
	addressLine4 *kernel.String50
	city         kernel.String50
	zipCode      kernel.ZipCode
	state        kernel.StateCode
	country      kernel.String50

	guard guard.ConstructorGuard
}

// NewAddress converts a checked address, failing on the first invalid field.
// US addresses need a five-digit zip code and a US state abbreviation; other
// countries accept a zip code and state of up to 50 characters, or none.
func NewAddress(checked CheckedAddress) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}
	var err error

	if a.addressLine1, err = kernel.NewString50("AddressLine1", checked.AddressLine1); err != nil {
		return Address{}, err
	}
	if a.addressLine2, err = kernel.NewOptionalString50("AddressLine2", checked.AddressLine2); err != nil {
		return Address{}, err
	}
	if a.addressLine3, err = kernel.NewOptionalString50("AddressLine3", checked.AddressLine3); err != nil {
		return Address{}, err
	}
	if a.addressLine4, err = kernel.NewOptionalString50("AddressLine4", checked.AddressLine4); err != nil {
		return Address{}, err
	}
	if a.city, err = kernel.NewString50("City", checked.City); err != nil {
		return Address{}, err
	}
	if a.country, err = kernel.NewString50("Country", checked.Country); err != nil {
		return Address{}, err
	}

	if a.country.Value() == countryUS {
		if a.zipCode, err = kernel.NewUsZipCode(checked.ZipCode); err != nil {
			return Address{}, err
		}
		if a.state, err = kernel.NewUsStateCode(checked.State); err != nil {
			return Address{}, err
		}
		return a, nil
	}

	if a.zipCode, err = kernel.NewZipCode(checked.ZipCode); err != nil {
		return Address{}, err
	}
	if a.state, err = kernel.NewStateCode(checked.State); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) AddressLine1() kernel.String50  { return a.addressLine1 }
func (a Address) AddressLine2() *kernel.String50 { return a.addressLine2 }
func (a Address) AddressLine3() *kernel.String50 { return a.addressLine3 }
func (a Address) AddressLine4() *kernel.String50 { return a.addressLine4 }
func (a Address) City() kernel.String50          { return a.city }
func (a Address) ZipCode() kernel.ZipCode        { return a.zipCode }
func (a Address) State() kernel.StateCode        { return a.state }
func (a Address) Country() kernel.String50       { return a.country }

// IsUS reports whether the address is in the United States.
func (a Address) IsUS() bool {
	return a.country.Value() == countryUS
}
