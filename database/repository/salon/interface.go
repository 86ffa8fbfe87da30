package salonRepo

import (
	"context"

	"priisme/models"
)

// SalonRepository defines read access to salons and their service menus.
type SalonRepository interface {
	ListActive(ctx context.Context, city string) ([]models.Salon, error)
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	// ListServices returns the active offerings of one salon.
	ListServices(ctx context.Context, salonID string) ([]models.SalonService, error)
	GetService(ctx context.Context, serviceID string) (*models.SalonService, error)
}
