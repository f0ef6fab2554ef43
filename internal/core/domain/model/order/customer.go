package order

import (
	"errors"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/guard"
)

var ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")

type PersonalName struct {
	FirstName kernel.String50
	LastName  kernel.String50
}

// CustomerInfo is the validated customer of an order.
type CustomerInfo struct {
	name         PersonalName
	emailAddress kernel.EmailAddress
	vipStatus    kernel.VipStatus

	guard guard.ConstructorGuard
}

// NewCustomerInfo validates each field in turn and returns the first failure.
func NewCustomerInfo(unvalidated UnvalidatedCustomerInfo) (CustomerInfo, error) {
	firstName, err := kernel.NewString50("FirstName", unvalidated.FirstName)
	if err != nil {
		return CustomerInfo{}, err
	}

	lastName, err := kernel.NewString50("LastName", unvalidated.LastName)
	if err != nil {
		return CustomerInfo{}, err
	}

	email, err := kernel.NewEmailAddress(unvalidated.EmailAddress)
	if err != nil {
		return CustomerInfo{}, err
	}

	vipStatus, err := kernel.NewVipStatus(unvalidated.VipStatus)
	if err != nil {
		return CustomerInfo{}, err
	}

	return CustomerInfo{
		name:         PersonalName{FirstName: firstName, LastName: lastName},
		emailAddress: email,
		vipStatus:    vipStatus,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

func (c CustomerInfo) Name() PersonalName {
	return c.name
}

func (c CustomerInfo) EmailAddress() kernel.EmailAddress {
	return c.emailAddress
}

func (c CustomerInfo) VipStatus() kernel.VipStatus {
	return c.vipStatus
}
