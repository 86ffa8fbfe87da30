package booking

import "time"

// Salons are closed on Mondays.
const closureDay = time.Monday

// timeSlots is the fixed set of bookable half-hour slots: a morning band and
// an afternoon/evening band with a midday gap.
var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
}

// TimeSlots returns the bookable time-of-day slots.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsValidSlot reports whether t is one of the fixed bookable slots.
func IsValidSlot(t string) bool {
	for _, s := range timeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// ParseDate parses a wizard date in "2006-01-02" form.
func ParseDate(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}

// IsBookableDate reports whether the date is today or later and not the
// weekly closure day, evaluated against now.
func IsBookableDate(date time.Time, now time.Time) bool {
	if date.Weekday() == closureDay {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !date.Before(today)
}
