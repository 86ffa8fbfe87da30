// File: services/booking/service.go
package booking

import (
	"context"
	"time"

	bookingRepo "priisme/database/repository/booking"
	salonRepo "priisme/database/repository/salon"
	"priisme/models"
	"priisme/services/notification"
	"priisme/services/payment"
	"priisme/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService implements WizardService. Draft state lives in the
// session store; every transition loads the draft, applies the pure wizard
// logic, and writes it back.
type DefaultWizardService struct {
	Salons    salonRepo.SalonRepository
	Bookings  bookingRepo.BookingRepository
	Payments  payment.Gateway
	Notifier  notification.NotificationService
	Store     SessionStore
	Reminders *tasks.Scheduler
	Logger    *zap.Logger

	// now is swappable for date-validation tests.
	now func() time.Time
}

// NewWizardService wires the wizard with its collaborators.
func NewWizardService(
	salons salonRepo.SalonRepository,
	bookings bookingRepo.BookingRepository,
	payments payment.Gateway,
	notifier notification.NotificationService,
	store SessionStore,
	reminders *tasks.Scheduler,
	logger *zap.Logger,
) *DefaultWizardService {
	return &DefaultWizardService{
		Salons:    salons,
		Bookings:  bookings,
		Payments:  payments,
		Notifier:  notifier,
		Store:     store,
		Reminders: reminders,
		Logger:    logger,
		now:       time.Now,
	}
}

// Open creates a wizard session for the salon, always starting at service
// selection.
func (s *DefaultWizardService) Open(ctx context.Context, salonID string) (*models.BookingWizard, error) {
	salon, err := s.Salons.GetByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	wizard := &models.BookingWizard{
		SessionID: uuid.New().String(),
		Stage:     models.StageSelectingService,
		SalonID:   salon.ID,
		SalonName: salon.Name,
		CreatedAt: s.now(),
	}
	if err := s.Store.Set(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Get returns the current wizard state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.BookingWizard, error) {
	return s.Store.Get(ctx, sessionID)
}

// ChooseService looks up the service, verifies it belongs to the open salon,
// and advances to date/time selection.
func (s *DefaultWizardService) ChooseService(ctx context.Context, sessionID, serviceID string) (*models.BookingWizard, error) {
	wizard, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, err := s.Salons.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := chooseService(wizard, svc); err != nil {
		return nil, err
	}

	if err := s.Store.Set(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// SelectDateTime records the date and/or time slot. Either argument may be
// empty to leave that field untouched.
func (s *DefaultWizardService) SelectDateTime(ctx context.Context, sessionID, date, slot string) (*models.BookingWizard, error) {
	wizard, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if date != "" {
		if err := selectDate(wizard, date, s.now()); err != nil {
			return nil, err
		}
	}
	if slot != "" {
		if err := selectTime(wizard, slot); err != nil {
			return nil, err
		}
	}

	if err := s.Store.Set(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Continue advances from date/time selection to confirmation.
func (s *DefaultWizardService) Continue(ctx context.Context, sessionID string) (*models.BookingWizard, error) {
	wizard, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := advance(wizard); err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Back walks one stage backwards.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingWizard, error) {
	wizard, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := back(wizard); err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Dismiss discards the wizard and its draft entirely; the next Open starts
// fresh at service selection.
func (s *DefaultWizardService) Dismiss(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
