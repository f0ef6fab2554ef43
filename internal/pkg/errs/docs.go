// Package errs provides standardized error types for the place-order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that the constrained value constructors and adapters share.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing or blank
//   - ValueIsInvalidError: For when a value is present but malformed
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
