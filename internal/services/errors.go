package services

import "errors"

// Business-outcome failures returned as values. Callers branch on these
// routinely; they never carry partial state.
var (
	// ErrNotFound signals that the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAllowanceBelowConsumed signals an admin tried to lower an
	// identity's credit allowance below what it has already consumed.
	ErrAllowanceBelowConsumed = errors.New("allowance below consumed credits")

	// ErrInvalidRole signals a role value outside admin/user/guest.
	ErrInvalidRole = errors.New("invalid role")
)
