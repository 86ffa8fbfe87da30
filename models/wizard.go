package models

import "time"

// WizardStage is the explicit state of the booking wizard. Stages are strictly
// ordered; forward transitions are gated by field completeness and back
// transitions are always allowed.
type WizardStage string

const (
	StageSelectingService  WizardStage = "selecting_service"
	StageSelectingDateTime WizardStage = "selecting_datetime"
	StageConfirming        WizardStage = "confirming"
)

// BookingWizard holds the draft state of one salon reservation between
// opening the wizard and confirmation. It lives in the session cache and is
// never persisted; the Booking record is written only on a successful
// confirm-and-pay.
type BookingWizard struct {
	SessionID string      `json:"sessionId"`
	Stage     WizardStage `json:"stage"`
	SalonID   string      `json:"salonId"`
	SalonName string      `json:"salonName,omitempty"`

	// Service snapshot taken at selection time.
	Service *SalonService `json:"service,omitempty"`

	Date string `json:"date,omitempty"` // "2006-01-02"
	Time string `json:"time,omitempty"` // "15:04"

	CreatedAt time.Time `json:"createdAt"`
}

// DraftComplete reports whether every field needed for confirmation is set.
func (w *BookingWizard) DraftComplete() bool {
	return w.SalonID != "" && w.Service != nil && w.Date != "" && w.Time != ""
}
