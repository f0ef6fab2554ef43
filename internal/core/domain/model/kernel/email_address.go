package kernel

import (
	"errors"
	"regexp"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"
)

var (
	ErrEmailAddressIsNotConstructed = errors.New("EmailAddress must be created via NewEmailAddress constructor")

	emailAddressPattern = regexp.MustCompile(`^.+@.+$`)
)

// EmailAddress is a string containing an "@" with at least one character on
// either side. Deliverability is not checked.
type EmailAddress struct {
	value string
	guard guard.ConstructorGuard
}

func NewEmailAddress(s string) (EmailAddress, error) {
	value, err := constrained.Like("EmailAddress", emailAddressPattern, s)
	if err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

func (e EmailAddress) Value() string {
	return e.value
}

func (e EmailAddress) String() string {
	return e.value
}
