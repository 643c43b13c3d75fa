package domain

import "errors"

// Engine error taxonomy. Services wrap these with context via fmt.Errorf and
// callers classify with errors.Is; nothing is retried automatically.
var (
	// ErrInvalidRange covers malformed dates, start after end, and booking
	// ranges that begin in the past.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrSelfBooking is returned when a renter tries to book their own car.
	ErrSelfBooking = errors.New("owner cannot book their own car")

	// ErrConflict means confirming would overlap an existing confirmed
	// reservation. Recoverable: reject, or cancel the conflicting
	// reservation and retry.
	ErrConflict = errors.New("car is already reserved for the selected dates")

	// ErrForbiddenTransition covers wrong-actor actions and transitions not
	// defined from the reservation's current state.
	ErrForbiddenTransition = errors.New("transition not allowed")

	ErrUnknownTier  = errors.New("unknown insurance tier")
	ErrUnknownExtra = errors.New("unknown extra")

	ErrNotFound = errors.New("not found")

	// ErrCarUnavailable is returned when the car is flagged for maintenance.
	ErrCarUnavailable = errors.New("car is currently in maintenance")
)
