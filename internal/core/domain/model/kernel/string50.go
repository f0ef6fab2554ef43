package kernel

import (
	"errors"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"
)

const string50MaxLength = 50

var ErrString50IsNotConstructed = errors.New("String50 must be created via NewString50 constructor")

// String50 is a non-blank string of at most 50 characters.
type String50 struct {
	value string
	guard guard.ConstructorGuard
}

// NewString50 validates s and names fieldName in the returned error.
func NewString50(fieldName, s string) (String50, error) {
	value, err := constrained.String(fieldName, string50MaxLength, s)
	if err != nil {
		return String50{}, err
	}
	return String50{value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewOptionalString50 returns nil for a blank s, otherwise the validated value.
func NewOptionalString50(fieldName, s string) (*String50, error) {
	value, ok, err := constrained.StringOption(fieldName, string50MaxLength, s)
	if err != nil || !ok {
		return nil, err
	}
	return &String50{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

func (s String50) Value() string {
	return s.value
}

func (s String50) String() string {
	return s.value
}
