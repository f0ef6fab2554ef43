package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its designated constructor.
// Embed it in value objects and commands; the zero value fails Validate, so a
// struct literal that skipped the constructor is detected before use.
//
// Example usage:
//
//	var ErrPriceNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
