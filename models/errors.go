package models

import "errors"

// Error taxonomy shared by services and handlers. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can map them to HTTP statuses with
// errors.Is.
var (
	// ErrValidation marks malformed or constraint-violating input, such as
	// a duplicate publisher name or a role mismatch on assignment.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing entity, including lookups filtered by a
	// required role that the target does not hold.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied marks an authenticated but unauthorized call.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDelivery marks a failed outbound notification or social post. It
	// is always logged and absorbed by the dispatcher, never returned to
	// the operation that triggered the delivery.
	ErrDelivery = errors.New("delivery failed")
)
