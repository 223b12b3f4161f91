// Package errs provides standardized error types for the dealer sales
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines the application error taxonomy:
//   - UnauthenticatedError: no valid actor for the operation
//   - ForbiddenError: actor lacks a required capability or ownership
//   - ObjectNotFoundError: referenced entity absent or soft-deleted
//   - ConflictError: state precondition violated (stock, status, duplicates)
//   - FatalError: invariant violated mid-operation, nothing may commit
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers branch with
//     errors.Is rather than string matching
//
// All errors from inner operations propagate unchanged to the caller; no
// operation swallows an error and returns a partial success.
package errs
