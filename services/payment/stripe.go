package payment

import (
	"context"
	"fmt"

	"priisme/config"
	"priisme/models"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway against Stripe Checkout. Amounts are
// passed through as INR minor units; Stripe hosts the payment page and the
// client is redirected to the returned URL.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway builds the Stripe-backed gateway. stripe.Key must have
// been set by the composition root.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// CreateCheckoutSession creates one hosted checkout session covering all
// given lines, tagged with the purchase-type discriminator.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, userID string, purchase models.PurchaseType, items []models.CheckoutItem) (*models.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("stripe: no items to check out")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(it.Name),
			Description: stripe.String(it.Description),
		}
		if it.Image != "" {
			productData.Images = stripe.StringSlice([]string{it.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyINR)),
				UnitAmount:  stripe.Int64(it.Price),
				ProductData: productData,
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(successURL(purchase)),
		CancelURL:  stripe.String(config.AppConfig.FrontendURL + config.AppConfig.CheckoutCancelPath),
		Metadata: map[string]string{
			"type":    string(purchase),
			"user_id": userID,
		},
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		g.logger.Error("stripe checkout session creation failed",
			zap.String("user", userID), zap.String("type", string(purchase)), zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	g.logger.Info("checkout session created",
		zap.String("user", userID),
		zap.String("type", string(purchase)),
		zap.String("session", sess.ID))

	return &models.CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

func successURL(purchase models.PurchaseType) string {
	base := config.AppConfig.FrontendURL
	if purchase == models.PurchaseTypeBooking {
		return base + config.AppConfig.BookingSuccessPath
	}
	return base + config.AppConfig.OrderSuccessPath
}
