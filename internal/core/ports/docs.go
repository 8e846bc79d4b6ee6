// Package ports defines the contracts between the food delivery core and its
// infrastructure: repositories per aggregate, the unit of work that binds them to
// one transaction, and the outbound services (event publishing, live location
// cache, password hashing, token issuance).
//
// Repositories return errs.ObjectNotFoundError for missing aggregates and
// errs.InvariantViolationError when a storage uniqueness rule rejects a write.
package ports
