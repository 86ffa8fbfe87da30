package booking

import (
	"context"

	"priisme/models"
)

// ConfirmResult is the outcome of a successful confirm-and-pay: the persisted
// pending booking plus the payment redirect handoff.
type ConfirmResult struct {
	Booking  *models.Booking         `json:"booking"`
	Checkout *models.CheckoutSession `json:"checkout"`
}

// WizardService drives one salon reservation through its three ordered
// stages and submits the result as a persisted booking plus payment handoff.
type WizardService interface {
	// Open starts a wizard for the given salon in the service-selection stage.
	Open(ctx context.Context, salonID string) (*models.BookingWizard, error)
	// Get returns the current wizard state.
	Get(ctx context.Context, sessionID string) (*models.BookingWizard, error)
	// ChooseService records a service of the open salon and advances.
	ChooseService(ctx context.Context, sessionID, serviceID string) (*models.BookingWizard, error)
	// SelectDateTime records date and/or time-of-day slot while selecting
	// date/time. Empty strings leave the respective field untouched.
	SelectDateTime(ctx context.Context, sessionID, date, slot string) (*models.BookingWizard, error)
	// Continue advances to confirmation once date and time are both set.
	Continue(ctx context.Context, sessionID string) (*models.BookingWizard, error)
	// Back walks one stage backwards.
	Back(ctx context.Context, sessionID string) (*models.BookingWizard, error)
	// Dismiss discards the wizard and all draft fields.
	Dismiss(ctx context.Context, sessionID string) error
	// ConfirmAndPay creates the payment session, persists the pending
	// booking on success, and discards the wizard. On payment failure the
	// wizard stays in the confirming stage with the draft intact.
	ConfirmAndPay(ctx context.Context, sessionID string, user *models.Identity) (*ConfirmResult, error)
}
