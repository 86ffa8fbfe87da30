package booking

import (
	"context"
	"testing"
	"time"

	salonRepo "priisme/database/repository/salon"
	"priisme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testNow is a Wednesday; the following Monday is 2026-03-09.
var testNow = time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)

func newTestWizard(t *testing.T) (*DefaultWizardService, *MemSessionStore, *MockBookingRepo, *MockGateway, *MockNotifier) {
	t.Helper()

	salons := &MockSalonRepo{
		Salons: map[string]models.Salon{
			"salon-1": {ID: "salon-1", Name: "Aura Studio", City: "Mumbai", IsActive: true},
			"salon-2": {ID: "salon-2", Name: "Shear Bliss", City: "Pune", IsActive: true},
		},
		Services: map[string]models.SalonService{
			"svc-cut":   {ID: "svc-cut", SalonID: "salon-1", Name: "Haircut", DurationMinutes: 45, Price: 150000},
			"svc-color": {ID: "svc-color", SalonID: "salon-1", Name: "Coloring", DurationMinutes: 90, Price: 420000},
			"svc-other": {ID: "svc-other", SalonID: "salon-2", Name: "Haircut", DurationMinutes: 30, Price: 90000},
		},
	}
	store := NewMemSessionStore()
	bookings := &MockBookingRepo{}
	gateway := &MockGateway{Session: &models.CheckoutSession{SessionID: "cs_book_1", URL: "https://pay.example/cs_book_1"}}
	notifier := &MockNotifier{}

	svc := NewWizardService(salons, bookings, gateway, notifier, store, nil, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc, store, bookings, gateway, notifier
}

func TestOpenStartsAtServiceSelection(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)

	w, err := svc.Open(context.Background(), "salon-1")
	require.NoError(t, err)
	assert.NotEmpty(t, w.SessionID)
	assert.Equal(t, models.StageSelectingService, w.Stage)
	assert.Equal(t, "Aura Studio", w.SalonName)
	assert.Nil(t, w.Service)
}

func TestOpenUnknownSalon(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)

	_, err := svc.Open(context.Background(), "salon-404")
	assert.ErrorIs(t, err, salonRepo.ErrSalonNotFound)
}

func TestChooseServiceAdvances(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)

	w, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectingDateTime, w.Stage)
	require.NotNil(t, w.Service)
	assert.Equal(t, "Haircut", w.Service.Name)
	assert.Equal(t, int64(150000), w.Service.Price)
}

func TestChooseServiceOfAnotherSalon(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)

	_, err = svc.ChooseService(ctx, w.SessionID, "svc-other")
	assert.ErrorIs(t, err, ErrServiceNotOffered)
}

func TestChooseServiceOutOfStage(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)

	// Already past service selection; a second pick needs a walk back first.
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-color")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelectDateTimeBeforeServiceChosen(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)

	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-05", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelectDateTimeValidation(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)

	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-03", "")
	assert.ErrorIs(t, err, ErrInvalidDate, "past date")

	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-09", "")
	assert.ErrorIs(t, err, ErrInvalidDate, "Monday closure")

	_, err = svc.SelectDateTime(ctx, w.SessionID, "", "13:00")
	assert.ErrorIs(t, err, ErrInvalidSlot, "midday gap")

	w, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-05", "10:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", w.Date)
	assert.Equal(t, "10:30", w.Time)
	assert.Equal(t, models.StageSelectingDateTime, w.Stage)
}

func TestContinueRequiresDateAndTime(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)

	_, err = svc.Continue(ctx, w.SessionID)
	assert.ErrorIs(t, err, ErrIncompleteBooking)

	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-05", "")
	require.NoError(t, err)
	_, err = svc.Continue(ctx, w.SessionID)
	assert.ErrorIs(t, err, ErrIncompleteBooking, "date alone is not enough")

	_, err = svc.SelectDateTime(ctx, w.SessionID, "", "10:30")
	require.NoError(t, err)
	w, err = svc.Continue(ctx, w.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirming, w.Stage)
}

func TestBackFromDateTimeDiscardsService(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)
	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-05", "10:30")
	require.NoError(t, err)

	w, err = svc.Back(ctx, w.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectingService, w.Stage)
	assert.Nil(t, w.Service)
	assert.Empty(t, w.Date)
	assert.Empty(t, w.Time)
}

func TestBackFromConfirmingKeepsDraft(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w := openConfirming(t, svc)

	w, err := svc.Back(ctx, w.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectingDateTime, w.Stage)
	require.NotNil(t, w.Service)
	assert.Equal(t, "2026-03-05", w.Date)
	assert.Equal(t, "10:30", w.Time)
}

func TestBackFromFirstStage(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)

	_, err = svc.Back(ctx, w.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDismissDiscardsSession(t *testing.T) {
	svc, _, _, _, _ := newTestWizard(t)
	ctx := context.Background()

	w := openConfirming(t, svc)

	require.NoError(t, svc.Dismiss(ctx, w.SessionID))
	_, err := svc.Get(ctx, w.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// A fresh open starts clean at service selection.
	w2, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectingService, w2.Stage)
	assert.Nil(t, w2.Service)
}

// openConfirming walks a wizard from open to the confirming stage.
func openConfirming(t *testing.T, svc *DefaultWizardService) *models.BookingWizard {
	t.Helper()
	ctx := context.Background()

	w, err := svc.Open(ctx, "salon-1")
	require.NoError(t, err)
	_, err = svc.ChooseService(ctx, w.SessionID, "svc-cut")
	require.NoError(t, err)
	_, err = svc.SelectDateTime(ctx, w.SessionID, "2026-03-05", "10:30")
	require.NoError(t, err)
	w, err = svc.Continue(ctx, w.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StageConfirming, w.Stage)
	return w
}
