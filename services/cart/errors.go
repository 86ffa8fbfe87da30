package cart

import "errors"

var (
	// ErrAuthRequired is returned when an operation needs an authenticated
	// identity and none is present.
	ErrAuthRequired = errors.New("authentication required")
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutFailed wraps a rejected payment-session creation.
	ErrCheckoutFailed = errors.New("checkout failed")
	// ErrRemoteWrite wraps a store mutation that was rejected or lost.
	ErrRemoteWrite = errors.New("remote write failed")
)
