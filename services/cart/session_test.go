package cart

import (
	"context"
	"errors"
	"testing"

	cartRepo "priisme/database/repository/cart"
	"priisme/models"
	"priisme/services/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testProducts = map[string]models.ProductSummary{
	"p1": {ID: "p1", Name: "Linen Shirt", Price: 150000, ImageURL: "https://img/p1.jpg"},
	"p2": {ID: "p2", Name: "Denim Jacket", Price: 320000, ImageURL: "https://img/p2.jpg"},
}

func newTestSession(t *testing.T, user *models.Identity) (*DefaultCartSession, *MockCartRepo, *MockNotifier, *MockGateway) {
	t.Helper()
	repo := NewMockCartRepo(testProducts)
	notifier := &MockNotifier{}
	gateway := &MockGateway{Session: &models.CheckoutSession{SessionID: "cs_123", URL: "https://pay.example/cs_123"}}

	s := NewCartSession(repo, identity.NewFixed(user), notifier, gateway, zap.NewNop())
	t.Cleanup(s.Close)
	require.NoError(t, s.Initialize(context.Background()))
	return s, repo, notifier, gateway
}

func signedIn() *models.Identity {
	return &models.Identity{ID: "user-1", Email: "user@example.com"}
}

func TestAddItemDistinctVariants(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 1, "M", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p1", 1, "L", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p2", 1, "", ""))

	items := s.Items()
	assert.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, 1, it.Quantity)
		require.NotNil(t, it.Product)
	}
}

func TestAddItemMergesExistingVariant(t *testing.T) {
	s, repo, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 2, "M", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p1", 1, "M", "Blue"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, s.Totals().TotalItems)

	// The second add goes down the quantity-update path, not a second insert.
	assert.Equal(t, 1, repo.InsertCalls)
	assert.Equal(t, 1, repo.UpdateCalls)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())

	require.NoError(t, s.AddItem(context.Background(), "p1", 0, "M", "Blue"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItemSignedOut(t *testing.T) {
	s, repo, notifier, _ := newTestSession(t, nil)

	err := s.AddItem(context.Background(), "p1", 1, "M", "Blue")
	require.ErrorIs(t, err, ErrAuthRequired)

	assert.Equal(t, 0, repo.InsertCalls)
	n := notifier.Last()
	require.NotNil(t, n)
	assert.Equal(t, "Sign in required", n.Title)
	assert.Equal(t, models.VariantDestructive, n.Variant)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 1, "M", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p2", 2, "", ""))

	items := s.Items()
	require.Len(t, items, 2)
	var target, other models.CartItem
	for _, it := range items {
		if it.ProductID == "p1" {
			target = it
		} else {
			other = it
		}
	}

	require.NoError(t, s.UpdateQuantity(ctx, target.ID, 5))

	for _, it := range s.Items() {
		switch it.ID {
		case target.ID:
			assert.Equal(t, 5, it.Quantity)
		case other.ID:
			assert.Equal(t, 2, it.Quantity)
		}
	}
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 3, "M", "Blue"))
	itemID := s.Items()[0].ID

	require.NoError(t, s.UpdateQuantity(ctx, itemID, 0))
	assert.Empty(t, s.Items())
}

func TestRemoveItemLeavesOthers(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 1, "M", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p2", 1, "", ""))

	items := s.Items()
	require.Len(t, items, 2)
	require.NoError(t, s.RemoveItem(ctx, items[0].ID))

	remaining := s.Items()
	require.Len(t, remaining, 1)
	assert.Equal(t, items[1].ID, remaining[0].ID)
}

func TestFailedUpdateNotifiesAndResyncs(t *testing.T) {
	s, repo, notifier, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 2, "M", "Blue"))
	itemID := s.Items()[0].ID

	repo.UpdateErr = errors.New("write rejected")
	err := s.UpdateQuantity(ctx, itemID, 7)
	require.ErrorIs(t, err, ErrRemoteWrite)

	// Local state reconverges with the store: quantity stays 2.
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	n := notifier.Last()
	require.NotNil(t, n)
	assert.Equal(t, models.VariantDestructive, n.Variant)
	assert.Equal(t, "Failed to update quantity", n.Description)
}

func TestMutationsScopedToOwner(t *testing.T) {
	repo := NewMockCartRepo(testProducts)
	notifier := &MockNotifier{}
	gateway := &MockGateway{}
	ctx := context.Background()

	alice := NewCartSession(repo, identity.NewFixed(&models.Identity{ID: "alice"}), notifier, gateway, zap.NewNop())
	t.Cleanup(alice.Close)
	require.NoError(t, alice.Initialize(ctx))
	require.NoError(t, alice.AddItem(ctx, "p1", 2, "M", "Blue"))
	aliceItemID := alice.Items()[0].ID

	bob := NewCartSession(repo, identity.NewFixed(&models.Identity{ID: "bob"}), notifier, gateway, zap.NewNop())
	t.Cleanup(bob.Close)
	require.NoError(t, bob.Initialize(ctx))

	// Bob's session cannot delete or rewrite Alice's line item: the remote
	// mutation is scoped to his own identity and matches nothing.
	require.ErrorIs(t, bob.RemoveItem(ctx, aliceItemID), cartRepo.ErrItemNotFound)
	require.ErrorIs(t, bob.UpdateQuantity(ctx, aliceItemID, 99), cartRepo.ErrItemNotFound)

	aliceItems, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, 2, aliceItems[0].Quantity)
}

func TestUpdateAndRemoveRequireIdentity(t *testing.T) {
	s, _, _, _ := newTestSession(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, s.UpdateQuantity(ctx, "item-1", 2), ErrAuthRequired)
	assert.ErrorIs(t, s.RemoveItem(ctx, "item-1"), ErrAuthRequired)
}

func TestClearSignedOutIsNoOp(t *testing.T) {
	s, _, notifier, _ := newTestSession(t, nil)

	require.NoError(t, s.Clear(context.Background()))
	assert.Empty(t, notifier.Sent)
}

func TestClearEmptiesCart(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 1, "M", "Blue"))
	require.NoError(t, s.AddItem(ctx, "p2", 1, "", ""))
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.Items())
	assert.Equal(t, models.CartTotals{}, s.Totals())
}

func TestTotalsDerivedFromItems(t *testing.T) {
	s, _, _, _ := newTestSession(t, signedIn())
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, "p1", 2, "M", "Blue")) // 2 x 150000
	require.NoError(t, s.AddItem(ctx, "p2", 1, "", ""))      // 1 x 320000

	want := models.CartTotals{TotalItems: 3, TotalAmount: 620000}
	assert.Equal(t, want, s.Totals())
	// Reading totals twice changes nothing.
	assert.Equal(t, want, s.Totals())
}
