package models

// PurchaseType discriminates what a checkout session pays for.
type PurchaseType string

const (
	PurchaseTypeFashion PurchaseType = "fashion"
	PurchaseTypeBooking PurchaseType = "booking"
)

// CheckoutItem is one line submitted to the payment-session endpoint.
// Price is the unit price in paise.
type CheckoutItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Image       string `json:"image,omitempty"`
}

// CheckoutSession is the payment handoff returned by the gateway. URL is
// opened in a new browsing context by the caller.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
