package order

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the PlaceOrderError variants.
var (
	ErrValidation    = errors.New("validation error")
	ErrPricing       = errors.New("pricing error")
	ErrRemoteService = errors.New("remote service error")
)

// Codes exposed to callers in the {code, message} error representation.
const (
	ValidationErrorCode    = "ValidationError"
	PricingErrorCode       = "PricingError"
	RemoteServiceErrorCode = "RemoteServiceError"
)

// PlaceOrderError is the only error the workflow returns. The variants are
// *ValidationError, *PricingError and *RemoteServiceError.
type PlaceOrderError interface {
	error
	Code() string

	isPlaceOrderError()
}

// ValidationError reports malformed input or a failed existence check.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Code() string  { return ValidationErrorCode }
func (e *ValidationError) Unwrap() error { return ErrValidation }

// PricingError reports a line price or billing total outside its bounds.
type PricingError struct {
	Message string
}

func NewPricingError(message string) *PricingError {
	return &PricingError{Message: message}
}

func (e *PricingError) Error() string { return e.Message }
func (e *PricingError) Code() string  { return PricingErrorCode }
func (e *PricingError) Unwrap() error { return ErrPricing }

// ServiceInfo names an external collaborator.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

func (s ServiceInfo) String() string {
	if s.Endpoint == "" {
		return s.Name
	}
	return fmt.Sprintf("%s [%s]", s.Name, s.Endpoint)
}

// RemoteServiceError reports that a collaborator failed to answer. Cause is the
// error the collaborator returned.
type RemoteServiceError struct {
	Service ServiceInfo
	Cause   error
}

func NewRemoteServiceError(service ServiceInfo, cause error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Cause: cause}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Cause)
}

func (e *RemoteServiceError) Code() string { return RemoteServiceErrorCode }

// Unwrap exposes both the sentinel and the cause, so errors.Is matches
// ErrRemoteService as well as context.Canceled from a cancelled check.
func (e *RemoteServiceError) Unwrap() []error {
	return []error{ErrRemoteService, e.Cause}
}

func (*ValidationError) isPlaceOrderError()    {}
func (*PricingError) isPlaceOrderError()       {}
func (*RemoteServiceError) isPlaceOrderError() {}
