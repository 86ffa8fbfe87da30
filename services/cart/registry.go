package cart

import (
	"context"
	"sync"

	cartRepo "priisme/database/repository/cart"
	"priisme/models"
	"priisme/services/identity"
	"priisme/services/notification"
	"priisme/services/payment"

	"go.uber.org/zap"
)

// Registry owns one CartSession per authenticated identity. It lives at the
// application's composition root and is injected into the HTTP layer; there
// is no ambient cart state anywhere else. Each session is backed by its own
// identity broker so sign-out can be published as an identity-change event.
type Registry struct {
	repo     cartRepo.CartRepository
	notifier notification.NotificationService
	payments payment.Gateway
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*registryEntry
}

type registryEntry struct {
	session *DefaultCartSession
	broker  *identity.Broker
}

// NewRegistry builds the registry with the collaborators every session shares.
func NewRegistry(
	repo cartRepo.CartRepository,
	notifier notification.NotificationService,
	payments payment.Gateway,
	logger *zap.Logger,
) *Registry {
	return &Registry{
		repo:     repo,
		notifier: notifier,
		payments: payments,
		logger:   logger,
		sessions: make(map[string]*registryEntry),
	}
}

// Session returns the identity's cart session, creating and initializing it
// on first use. Creation is serialized so two concurrent requests for the
// same user share one session.
func (r *Registry) Session(ctx context.Context, user *models.Identity) (*DefaultCartSession, error) {
	r.mu.Lock()
	if e, ok := r.sessions[user.ID]; ok {
		r.mu.Unlock()
		return e.session, nil
	}
	broker := identity.NewBroker()
	broker.Publish(user)
	s := NewCartSession(r.repo, broker, r.notifier, r.payments, r.logger)
	r.sessions[user.ID] = &registryEntry{session: s, broker: broker}
	r.mu.Unlock()

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Evict tears down a user's session on sign-out. The sign-out is published
// through the session's broker first, so the session empties its local item
// view the same way any identity change does, then the session is closed and
// dropped.
func (r *Registry) Evict(userID string) {
	r.mu.Lock()
	e, ok := r.sessions[userID]
	if ok {
		delete(r.sessions, userID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	e.broker.Publish(nil)
	e.session.Close()
}
