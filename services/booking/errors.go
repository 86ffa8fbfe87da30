package booking

import "errors"

var (
	// ErrAuthRequired is returned when confirmation is attempted without an
	// authenticated identity. No remote call is made in that case.
	ErrAuthRequired = errors.New("authentication required")
	// ErrCheckoutFailed wraps a rejected payment-session creation. The wizard
	// stays in the confirming stage so the user may retry.
	ErrCheckoutFailed = errors.New("checkout failed")
	// ErrIncompleteBooking is returned when a forward transition is attempted
	// before its required fields are populated.
	ErrIncompleteBooking = errors.New("booking draft incomplete")
	// ErrInvalidTransition is returned for a transition the current stage
	// does not allow.
	ErrInvalidTransition = errors.New("invalid wizard transition")
	// ErrSessionNotFound is returned when the wizard session is missing or
	// expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrInvalidDate is returned for a past date or the salon closure day.
	ErrInvalidDate = errors.New("date not bookable")
	// ErrInvalidSlot is returned for a time outside the fixed slot set.
	ErrInvalidSlot = errors.New("time slot not available")
	// ErrServiceNotOffered is returned when the chosen service does not
	// belong to the open salon.
	ErrServiceNotOffered = errors.New("service not offered by this salon")
)
