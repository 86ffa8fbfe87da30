package notification

import (
	"context"

	"priisme/models"
)

// NotificationService delivers fire-and-forget user notices. Callers never
// block a user action on delivery: failures are logged by the implementation
// and the returned error is informational only.
type NotificationService interface {
	Notify(ctx context.Context, userID string, n models.Notification) error
}
