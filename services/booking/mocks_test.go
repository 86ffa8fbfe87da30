package booking

import (
	"context"
	"sync"

	salonRepo "priisme/database/repository/salon"
	"priisme/models"
)

// MemSessionStore keeps wizard drafts in a map. It mirrors the Redis store's
// contract, including the not-found error.
type MemSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingWizard
}

func NewMemSessionStore() *MemSessionStore {
	return &MemSessionStore{sessions: make(map[string]models.BookingWizard)}
}

func (s *MemSessionStore) Get(_ context.Context, sessionID string) (*models.BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := w
	return &out, nil
}

func (s *MemSessionStore) Set(_ context.Context, wizard *models.BookingWizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[wizard.SessionID] = *wizard
	return nil
}

func (s *MemSessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// MockSalonRepo serves a fixed set of salons and services.
type MockSalonRepo struct {
	Salons   map[string]models.Salon
	Services map[string]models.SalonService
}

func (m *MockSalonRepo) ListActive(_ context.Context, _ string) ([]models.Salon, error) {
	var out []models.Salon
	for _, s := range m.Salons {
		out = append(out, s)
	}
	return out, nil
}

func (m *MockSalonRepo) GetByID(_ context.Context, id string) (*models.Salon, error) {
	s, ok := m.Salons[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	return &s, nil
}

func (m *MockSalonRepo) ListServices(_ context.Context, salonID string) ([]models.SalonService, error) {
	var out []models.SalonService
	for _, svc := range m.Services {
		if svc.SalonID == salonID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *MockSalonRepo) GetService(_ context.Context, serviceID string) (*models.SalonService, error) {
	svc, ok := m.Services[serviceID]
	if !ok {
		return nil, salonRepo.ErrServiceNotFound
	}
	return &svc, nil
}

// MockBookingRepo captures created bookings.
type MockBookingRepo struct {
	CreateErr error
	Created   []*models.Booking
}

func (m *MockBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, booking)
	return nil
}

func (m *MockBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for _, b := range m.Created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *MockBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.Created {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *MockBookingRepo) UpdateStatus(_ context.Context, _, _, _ string) error {
	return nil
}

// MockGateway returns a fixed checkout session or a configured error.
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

// MockNotifier records every notification it receives.
type MockNotifier struct {
	Sent []models.Notification
}

func (m *MockNotifier) Notify(_ context.Context, _ string, n models.Notification) error {
	m.Sent = append(m.Sent, n)
	return nil
}
