package booking

import (
	"context"
	"errors"
	"testing"

	"priisme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingUser() *models.Identity {
	return &models.Identity{ID: "user-1", Email: "user@example.com"}
}

func TestConfirmAndPaySuccess(t *testing.T) {
	svc, _, bookings, gateway, notifier := newTestWizard(t)
	ctx := context.Background()

	w := openConfirming(t, svc)

	result, err := svc.ConfirmAndPay(ctx, w.SessionID, bookingUser())
	require.NoError(t, err)

	// Payment handoff comes back to the caller.
	require.NotNil(t, result.Checkout)
	assert.Equal(t, "cs_book_1", result.Checkout.SessionID)
	assert.Equal(t, "https://pay.example/cs_book_1", result.Checkout.URL)
	assert.Equal(t, models.PurchaseTypeBooking, gateway.Purchase)
	require.Len(t, gateway.Items, 1)
	assert.Equal(t, int64(150000), gateway.Items[0].Price)
	assert.Equal(t, int64(1), gateway.Items[0].Quantity)

	// The booking is persisted pending, correlated to the payment session.
	require.Len(t, bookings.Created, 1)
	b := bookings.Created[0]
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "salon-1", b.SalonID)
	assert.Equal(t, "svc-cut", b.ServiceID)
	assert.Equal(t, "2026-03-05", b.BookingDate)
	assert.Equal(t, "10:30", b.BookingTime)
	assert.Equal(t, int64(150000), b.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "cs_book_1", b.StripeSessionID)

	// The wizard is discarded.
	_, err = svc.Get(ctx, w.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NotEmpty(t, notifier.Sent)
	assert.Equal(t, "Booking created", notifier.Sent[len(notifier.Sent)-1].Title)
}

func TestConfirmAndPayRequiresConfirmingStage(t *testing.T) {
	svc, _, bookings, gateway, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)

	_, err = svc.ConfirmAndPay(ctx, w.SessionID, bookingUser())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, gateway.Calls)
	assert.Empty(t, bookings.Created)
}

func TestConfirmAndPayRequiresIdentity(t *testing.T) {
	svc, _, bookings, gateway, _ := newTestWizard(t)
	ctx := context.Background()

	w := openConfirming(t, svc)

	_, err := svc.ConfirmAndPay(ctx, w.SessionID, nil)
	assert.ErrorIs(t, err, ErrAuthRequired)

	// No remote call happens for an unauthenticated confirm.
	assert.Equal(t, 0, gateway.Calls)
	assert.Empty(t, bookings.Created)

	// The draft survives for a retry after sign-in.
	got, err := svc.Get(ctx, w.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirming, got.Stage)
}

func TestConfirmAndPayPaymentFailure(t *testing.T) {
	svc, _, bookings, gateway, _ := newTestWizard(t)
	ctx := context.Background()

	w := openConfirming(t, svc)
	gateway.Err = errors.New("gateway down")

	_, err := svc.ConfirmAndPay(ctx, w.SessionID, bookingUser())
	require.ErrorIs(t, err, ErrCheckoutFailed)

	// No booking row is written on payment failure.
	assert.Empty(t, bookings.Created)

	// The wizard stays in confirming with the draft intact for a retry.
	got, err := svc.Get(ctx, w.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirming, got.Stage)
	require.NotNil(t, got.Service)
	assert.Equal(t, "2026-03-05", got.Date)
	assert.Equal(t, "10:30", got.Time)
}

func TestConfirmAndPayUnknownSession(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)

	_, err := svc.ConfirmAndPay(context.Background(), "nope", bookingUser())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
