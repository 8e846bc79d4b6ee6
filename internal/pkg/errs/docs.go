// Package errs provides the error vocabulary shared by the domain, the
// application handlers and the HTTP adapter.
//
// Validation failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//
// Business failures:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - InvalidStateTransitionError: a state machine rejected a status change
//   - InvariantViolationError: a business rule rejected the operation
//   - OwnershipViolationError: the caller does not own the target entity
//
// Every type unwraps to its sentinel (ErrValueIsRequired, ErrObjectNotFound, ...)
// so callers classify failures with errors.Is and read details with errors.As.
package errs
