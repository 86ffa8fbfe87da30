package cartRepo

import (
	"context"
	"errors"

	"priisme/models"
)

// ErrItemNotFound is returned when a mutation targets an item that does not
// exist for the given owner. An item ID belonging to another user is
// indistinguishable from a missing one.
var ErrItemNotFound = errors.New("cart item not found")

// CartRepository defines data access for a user's pending purchase line
// items. Every mutation is scoped to the owning user; an item ID alone never
// authorizes a write.
type CartRepository interface {
	// ListByUser returns all items owned by the user, newest first, with the
	// product fields denormalized onto each item.
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	// Insert creates a new line item row.
	Insert(ctx context.Context, item *models.CartItem) error
	// UpdateQuantity sets the quantity of one of the user's items.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	// Delete removes one of the user's items.
	Delete(ctx context.Context, userID, itemID string) error
	// DeleteByUser removes every item owned by the user.
	DeleteByUser(ctx context.Context, userID string) error
}
