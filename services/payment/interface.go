package payment

import (
	"context"

	"priisme/models"
)

// Gateway creates hosted payment sessions. Payment processing itself is owned
// by the external platform; the core only receives a redirect URL and a
// correlation token.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, userID string, purchase models.PurchaseType, items []models.CheckoutItem) (*models.CheckoutSession, error)
}
