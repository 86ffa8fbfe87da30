// File: services/cart/session.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cartRepo "priisme/database/repository/cart"
	"priisme/models"
	"priisme/services/identity"
	"priisme/services/notification"
	"priisme/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCartSession implements CartSession. Local items are the source of
// truth for display, but every mutation round-trips through the remote store
// before the local view changes; a failed remote call leaves local state
// exactly as it was.
type DefaultCartSession struct {
	repo     cartRepo.CartRepository
	identity identity.Provider
	notifier notification.NotificationService
	payments payment.Gateway
	logger   *zap.Logger

	mu      sync.Mutex
	items   []models.CartItem
	loading bool

	// addFlight coalesces concurrent adds of the same variant so a
	// double-click cannot race two inserts for one (product, size, color).
	addFlight singleflight.Group

	unsubscribe func()
}

// NewCartSession builds a session bound to the given identity provider and
// subscribes to its change events. Callers should run Initialize once and
// Close when the session is discarded.
func NewCartSession(
	repo cartRepo.CartRepository,
	provider identity.Provider,
	notifier notification.NotificationService,
	payments payment.Gateway,
	logger *zap.Logger,
) *DefaultCartSession {
	s := &DefaultCartSession{
		repo:     repo,
		identity: provider,
		notifier: notifier,
		payments: payments,
		logger:   logger,
		loading:  true,
	}
	s.unsubscribe = provider.OnChange(func(_ *models.Identity) {
		// Identity changed (sign-in, sign-out, refresh): resynchronize.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Initialize(ctx); err != nil {
			s.logger.Warn("cart re-initialization after identity change failed", zap.Error(err))
		}
	})
	return s
}

// Initialize fetches the full item list for the current identity, newest
// first. With no identity resolved, the item list is emptied.
func (s *DefaultCartSession) Initialize(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		s.setItems(nil)
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		s.setItems(nil)
		return nil
	}

	items, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.logger.Error("failed to fetch cart", zap.String("user", user.ID), zap.Error(err))
		return fmt.Errorf("failed to fetch cart: %w", err)
	}

	s.setItems(items)
	return nil
}

func (s *DefaultCartSession) setItems(items []models.CartItem) {
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

// Items returns a copy of the current line items.
func (s *DefaultCartSession) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsLoading reports whether the initial synchronization pass is in flight.
func (s *DefaultCartSession) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AddItem adds quantity of a variant for the signed-in identity. An add
// matching an existing (product, size, color) tuple delegates to the
// quantity-update path with the summed quantity; a miss inserts a new remote
// row and re-fetches the whole list so the denormalized product fields are
// attached.
func (s *DefaultCartSession) AddItem(ctx context.Context, productID string, quantity int, size, color string) error {
	if quantity < 1 {
		quantity = 1
	}

	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		s.notify(ctx, "", models.Notification{
			Title:       "Sign in required",
			Description: "Please sign in to add items to cart",
			Variant:     models.VariantDestructive,
		})
		return ErrAuthRequired
	}

	key := productID + "|" + size + "|" + color
	_, err, _ = s.addFlight.Do(key, func() (interface{}, error) {
		return nil, s.addItem(ctx, user, productID, quantity, size, color)
	})
	return err
}

func (s *DefaultCartSession) addItem(ctx context.Context, user *models.Identity, productID string, quantity int, size, color string) error {
	s.mu.Lock()
	var existing *models.CartItem
	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size && s.items[i].Color == color {
			existing = &s.items[i]
			break
		}
	}
	var existingID string
	var existingQty int
	if existing != nil {
		existingID = existing.ID
		existingQty = existing.Quantity
	}
	s.mu.Unlock()

	if existing != nil {
		return s.UpdateQuantity(ctx, existingID, existingQty+quantity)
	}

	item := &models.CartItem{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		s.logger.Error("failed to add cart item", zap.String("user", user.ID), zap.Error(err))
		s.notify(ctx, user.ID, models.Notification{
			Title:       "Error",
			Description: "Failed to add item to cart",
			Variant:     models.VariantDestructive,
		})
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}

	s.notify(ctx, user.ID, models.Notification{
		Title:       "Added to cart",
		Description: "Item has been added to your cart",
		Variant:     models.VariantNormal,
	})

	if err := s.Initialize(ctx); err != nil {
		s.logger.Warn("cart refresh after add failed", zap.Error(err))
	}
	return nil
}

// UpdateQuantity sets an item's quantity remotely, then mirrors the change
// into local state without a full re-fetch. A target below 1 removes the item
// instead; a zero-quantity row never exists. The remote write is scoped to
// the session's identity, so an item ID owned by someone else cannot be
// touched through this session.
func (s *DefaultCartSession) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, itemID)
	}

	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		return ErrAuthRequired
	}

	if err := s.repo.UpdateQuantity(ctx, user.ID, itemID, quantity); err != nil {
		if errors.Is(err, cartRepo.ErrItemNotFound) {
			// Local state may hold a row the store no longer does;
			// reconverge silently.
			s.resync(ctx)
			return err
		}
		s.logger.Error("failed to update cart quantity", zap.String("item", itemID), zap.Error(err))
		s.failedMutation(ctx, "Failed to update quantity")
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// RemoveItem deletes the item remotely, scoped to the session's identity, and
// filters it out of local state.
func (s *DefaultCartSession) RemoveItem(ctx context.Context, itemID string) error {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		return ErrAuthRequired
	}

	if err := s.repo.Delete(ctx, user.ID, itemID); err != nil {
		if errors.Is(err, cartRepo.ErrItemNotFound) {
			s.resync(ctx)
			return err
		}
		s.logger.Error("failed to remove cart item", zap.String("item", itemID), zap.Error(err))
		s.failedMutation(ctx, "Failed to remove item")
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// Clear deletes all remote items owned by the identity, then empties local
// state. A signed-out session is a silent no-op.
func (s *DefaultCartSession) Clear(ctx context.Context) error {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		return nil
	}

	if err := s.repo.DeleteByUser(ctx, user.ID); err != nil {
		s.logger.Error("failed to clear cart", zap.String("user", user.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}

	s.setItems(nil)
	return nil
}

// Totals derives aggregates fresh from the current items on every call.
func (s *DefaultCartSession) Totals() models.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals models.CartTotals
	for _, it := range s.items {
		totals.TotalItems += it.Quantity
		totals.TotalAmount += it.UnitPrice() * int64(it.Quantity)
	}
	return totals
}

// Close unsubscribes the session from identity-change events.
func (s *DefaultCartSession) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// resync re-runs the full fetch so the local view reconverges with the store.
func (s *DefaultCartSession) resync(ctx context.Context) {
	if err := s.Initialize(ctx); err != nil {
		s.logger.Warn("cart re-sync failed", zap.Error(err))
	}
}

// failedMutation surfaces a destructive notice and schedules a full
// re-synchronization so the local view reconverges with the remote store
// after a rejected update or delete.
func (s *DefaultCartSession) failedMutation(ctx context.Context, description string) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil || user == nil {
		return
	}
	s.notify(ctx, user.ID, models.Notification{
		Title:       "Error",
		Description: description,
		Variant:     models.VariantDestructive,
	})
	s.resync(ctx)
}

func (s *DefaultCartSession) notify(ctx context.Context, userID string, n models.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, n); err != nil {
		s.logger.Debug("notification delivery failed", zap.String("title", n.Title), zap.Error(err))
	}
}
