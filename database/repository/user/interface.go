package userRepo

import (
	"context"

	"priisme/models"
)

// UserRepository defines access to the device-token records kept for push
// delivery. Accounts themselves are owned by the external identity platform.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// UpsertDeviceToken records the FCM token for an identity, creating the
	// record if it does not exist yet.
	UpsertDeviceToken(ctx context.Context, id, email, token string) error
}
