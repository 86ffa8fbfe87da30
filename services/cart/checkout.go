package cart

import (
	"context"
	"fmt"

	"priisme/models"

	"go.uber.org/zap"
)

// Checkout maps every line item to a checkout line and submits them as one
// payment session tagged "fashion". Cart state is never touched: success
// returns the redirect handoff (the buyer's cart is cleared only after the
// external payment completes), and failure leaves everything as it was.
func (s *DefaultCartSession) Checkout(ctx context.Context) (*models.CheckoutSession, error) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	items := s.Items()
	if len(items) == 0 {
		s.notifyUser(ctx, user, models.Notification{
			Title:       "Cart is empty",
			Description: "Add some items to your cart first",
			Variant:     models.VariantDestructive,
		})
		return nil, ErrEmptyCart
	}

	userID := ""
	if user != nil {
		userID = user.ID
	}

	lines := make([]models.CheckoutItem, 0, len(items))
	for _, it := range items {
		name := "Product"
		image := ""
		if it.Product != nil {
			name = it.Product.Name
			image = it.Product.ImageURL
		}
		lines = append(lines, models.CheckoutItem{
			Name:        name,
			Description: fmt.Sprintf("Size: %s, Color: %s", orNA(it.Size), orNA(it.Color)),
			Price:       it.UnitPrice(),
			Quantity:    int64(it.Quantity),
			Image:       image,
		})
	}

	session, err := s.payments.CreateCheckoutSession(ctx, userID, models.PurchaseTypeFashion, lines)
	if err != nil {
		s.logger.Error("cart checkout failed", zap.String("user", userID), zap.Error(err))
		s.notifyUser(ctx, user, models.Notification{
			Title:       "Checkout failed",
			Description: "Please try again later",
			Variant:     models.VariantDestructive,
		})
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	return session, nil
}

func (s *DefaultCartSession) notifyUser(ctx context.Context, user *models.Identity, n models.Notification) {
	userID := ""
	if user != nil {
		userID = user.ID
	}
	s.notify(ctx, userID, n)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
