package cart

import (
	"context"

	"priisme/models"
)

// CartSession is the authoritative in-memory view of one identity's pending
// purchase line items, kept in sync with the remote store.
type CartSession interface {
	// Initialize loads the identity's items from the remote store. It runs on
	// creation and re-runs on every identity change.
	Initialize(ctx context.Context) error
	// Items returns a snapshot of the current line items.
	Items() []models.CartItem
	// IsLoading reports whether the initial synchronization pass is still in
	// flight or no identity has been resolved yet.
	IsLoading() bool
	// AddItem adds quantity of a product variant. An add matching an existing
	// (product, size, color) tuple accumulates onto that item.
	AddItem(ctx context.Context, productID string, quantity int, size, color string) error
	// UpdateQuantity sets an item's quantity; a target below 1 removes it.
	// Only items owned by the session's identity can be touched.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	// RemoveItem deletes one of the identity's items remotely and locally.
	RemoveItem(ctx context.Context, itemID string) error
	// Clear deletes all of the identity's items. Silent no-op when signed out.
	Clear(ctx context.Context) error
	// Totals derives item count and total amount from the current items.
	Totals() models.CartTotals
	// Checkout submits all items as one payment session and returns the
	// redirect handoff. Never mutates cart state.
	Checkout(ctx context.Context) (*models.CheckoutSession, error)
	// Close unsubscribes from identity changes.
	Close()
}
