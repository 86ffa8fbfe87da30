// File: services/booking/wizard.go
//
// Pure transition logic for the three-stage booking wizard. The wizard is an
// explicit state value with a transition table: forward transitions are gated
// by field-completeness predicates, back transitions are unconditional. All
// functions operate on the draft in memory; persistence belongs to the
// session service.
package booking

import (
	"time"

	"priisme/models"
)

// transitions lists, per stage, which stage a forward or backward step lands
// in. Confirmation is terminal and handled by ConfirmAndPay.
var transitions = map[models.WizardStage]struct {
	forward models.WizardStage
	back    models.WizardStage
}{
	models.StageSelectingService:  {forward: models.StageSelectingDateTime},
	models.StageSelectingDateTime: {forward: models.StageConfirming, back: models.StageSelectingService},
	models.StageConfirming:        {back: models.StageSelectingDateTime},
}

// chooseService records the service selection and advances to date/time
// selection. It is only legal while selecting a service; the confirming stage
// is unreachable for a new service without walking back first.
func chooseService(w *models.BookingWizard, svc *models.SalonService) error {
	if w.Stage != models.StageSelectingService {
		return ErrInvalidTransition
	}
	if svc.SalonID != w.SalonID {
		return ErrServiceNotOffered
	}
	snapshot := *svc
	w.Service = &snapshot
	w.Stage = transitions[w.Stage].forward
	return nil
}

// selectDate validates and records the visit date.
func selectDate(w *models.BookingWizard, date string, now time.Time) error {
	if w.Stage != models.StageSelectingDateTime {
		return ErrInvalidTransition
	}
	d, err := ParseDate(date)
	if err != nil {
		return ErrInvalidDate
	}
	if !IsBookableDate(d, now) {
		return ErrInvalidDate
	}
	w.Date = date
	return nil
}

// selectTime validates and records the time-of-day slot.
func selectTime(w *models.BookingWizard, slot string) error {
	if w.Stage != models.StageSelectingDateTime {
		return ErrInvalidTransition
	}
	if !IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	w.Time = slot
	return nil
}

// advance moves to the confirmation stage, gated on both date and time being
// set.
func advance(w *models.BookingWizard) error {
	if w.Stage != models.StageSelectingDateTime {
		return ErrInvalidTransition
	}
	if w.Date == "" || w.Time == "" {
		return ErrIncompleteBooking
	}
	w.Stage = transitions[w.Stage].forward
	return nil
}

// back walks one stage backwards. Leaving date/time selection discards the
// chosen service; leaving confirmation keeps date and time intact.
func back(w *models.BookingWizard) error {
	t, ok := transitions[w.Stage]
	if !ok || t.back == "" {
		return ErrInvalidTransition
	}
	if w.Stage == models.StageSelectingDateTime {
		w.Service = nil
		w.Date = ""
		w.Time = ""
	}
	w.Stage = t.back
	return nil
}
