// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Generic validation errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError
//   - Domain errors of the fulfillment workflow: InvalidTransitionError,
//     CapacityExceededError, VehicleUnavailableError, InsufficientStockError,
//     StorageUnavailableError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with a WithCause variant where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// VersionIsInvalidError and StorageUnavailableError are retry-safe; all other
// errors require the caller to correct the request before retrying.
package errs
