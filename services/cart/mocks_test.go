package cart

import (
	"context"
	"sync"

	cartRepo "priisme/database/repository/cart"
	"priisme/models"
)

// MockCartRepo implements cartRepo.CartRepository over an in-memory slice.
// Error fields make individual operations fail on demand.
type MockCartRepo struct {
	mu       sync.Mutex
	items    []models.CartItem
	products map[string]models.ProductSummary

	ListErr   error
	InsertErr error
	UpdateErr error
	DeleteErr error

	InsertCalls int
	UpdateCalls int
}

func NewMockCartRepo(products map[string]models.ProductSummary) *MockCartRepo {
	return &MockCartRepo{products: products}
}

func (m *MockCartRepo) ListByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.CartItem
	for _, it := range m.items {
		if it.UserID != userID {
			continue
		}
		if p, ok := m.products[it.ProductID]; ok {
			summary := p
			it.Product = &summary
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *MockCartRepo) Insert(_ context.Context, item *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls++
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *MockCartRepo) UpdateQuantity(_ context.Context, userID, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.items {
		if m.items[i].ID == itemID && m.items[i].UserID == userID {
			m.items[i].Quantity = quantity
			return nil
		}
	}
	return cartRepo.ErrItemNotFound
}

func (m *MockCartRepo) Delete(_ context.Context, userID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	kept := m.items[:0]
	deleted := false
	for _, it := range m.items {
		if it.ID == itemID && it.UserID == userID {
			deleted = true
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	if !deleted {
		return cartRepo.ErrItemNotFound
	}
	return nil
}

func (m *MockCartRepo) DeleteByUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	kept := m.items[:0]
	for _, it := range m.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

// MockNotifier records every notification it receives.
type MockNotifier struct {
	mu   sync.Mutex
	Sent []models.Notification
}

func (m *MockNotifier) Notify(_ context.Context, _ string, n models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, n)
	return nil
}

func (m *MockNotifier) Last() *models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	n := m.Sent[len(m.Sent)-1]
	return &n
}

// MockGateway captures the line items handed to checkout.
type MockGateway struct {
	Session *models.CheckoutSession
	Err     error

	Calls    int
	Purchase models.PurchaseType
	Items    []models.CheckoutItem
}

func (m *MockGateway) CreateCheckoutSession(_ context.Context, _ string, purchase models.PurchaseType, items []models.CheckoutItem) (*models.CheckoutSession, error) {
	m.Calls++
	m.Purchase = purchase
	m.Items = items
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}
