package models

// ReminderPayload is the task payload for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	SalonName   string `json:"salonName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
