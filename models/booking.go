package models

import "time"

// Booking statuses. A booking is written as pending at confirmation time;
// later transitions are driven externally by payment confirmation.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a persisted salon reservation. It is created only at the final
// wizard step, immediately before the payment redirect is handed to the user.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	SalonID         string    `bson:"salon_id" json:"salon_id"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	BookingDate     string    `bson:"booking_date" json:"booking_date"` // "2006-01-02"
	BookingTime     string    `bson:"booking_time" json:"booking_time"` // "15:04"
	TotalAmount     int64     `bson:"total_amount" json:"total_amount"` // paise
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	StripeSessionID string    `bson:"stripe_session_id,omitempty" json:"stripe_session_id,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
