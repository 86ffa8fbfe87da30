package bookingRepo

import (
	"context"

	"priisme/models"
)

// BookingRepository defines data access for persisted bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByUser returns the user's bookings, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// UpdateStatus transitions booking and payment status. Driven by external
	// payment confirmation, never by the wizard itself.
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
}
