package booking

import (
	"context"
	"fmt"

	"priisme/models"
	"priisme/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmAndPay finalizes the wizard. Order matters: the payment session is
// created first, and only on success is the pending Booking written and the
// wizard discarded. A payment failure leaves the wizard in the confirming
// stage with the draft intact so the user may retry; no Booking row is
// written in that case.
func (s *DefaultWizardService) ConfirmAndPay(ctx context.Context, sessionID string, user *models.Identity) (*ConfirmResult, error) {
	wizard, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wizard.Stage != models.StageConfirming {
		return nil, ErrInvalidTransition
	}
	if !wizard.DraftComplete() {
		return nil, ErrIncompleteBooking
	}
	if user == nil {
		return nil, ErrAuthRequired
	}

	svc := wizard.Service
	line := models.CheckoutItem{
		Name:        svc.Name,
		Description: fmt.Sprintf("%s at %s, %s %s (%d min)", svc.Name, wizard.SalonName, wizard.Date, wizard.Time, svc.DurationMinutes),
		Price:       svc.Price,
		Quantity:    1,
	}

	checkout, err := s.Payments.CreateCheckoutSession(ctx, user.ID, models.PurchaseTypeBooking, []models.CheckoutItem{line})
	if err != nil {
		s.Logger.Error("booking payment session creation failed",
			zap.String("session", sessionID), zap.String("user", user.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		SalonID:         wizard.SalonID,
		ServiceID:       svc.ID,
		BookingDate:     wizard.Date,
		BookingTime:     wizard.Time,
		TotalAmount:     svc.Price,
		Status:          models.BookingStatusPending,
		StripeSessionID: checkout.SessionID,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		// The payment session exists but the booking row does not; keep the
		// wizard so the user can retry, and let reconciliation pick up the
		// orphaned session from its correlation token.
		s.Logger.Error("failed to persist booking after payment session",
			zap.String("session", sessionID), zap.String("stripe_session", checkout.SessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(models.ReminderPayload{
			BookingID:   booking.ID,
			UserID:      user.ID,
			SalonName:   wizard.SalonName,
			ServiceName: svc.Name,
			Date:        wizard.Date,
			Time:        wizard.Time,
		}); err != nil {
			s.Logger.Warn("failed to schedule booking reminder", zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	if s.Notifier != nil {
		n := models.Notification{
			Title:       "Booking created",
			Description: fmt.Sprintf("%s at %s on %s %s, %s", svc.Name, wizard.SalonName, wizard.Date, wizard.Time, utils.FormatPaise(svc.Price)),
			Variant:     models.VariantNormal,
		}
		if err := s.Notifier.Notify(ctx, user.ID, n); err != nil {
			s.Logger.Debug("booking notification delivery failed", zap.Error(err))
		}
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to discard wizard session after confirmation",
			zap.String("session", sessionID), zap.Error(err))
	}

	return &ConfirmResult{Booking: booking, Checkout: checkout}, nil
}
