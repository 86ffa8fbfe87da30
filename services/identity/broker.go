package identity

import (
	"context"
	"sync"

	"priisme/models"
)

// Broker is an in-process Provider that holds the current identity and fans
// out change events to subscribers. The HTTP layer publishes into it when a
// token is resolved or a session ends.
type Broker struct {
	mu        sync.RWMutex
	current   *models.Identity
	listeners map[int]func(*models.Identity)
	nextID    int
}

// NewBroker returns a Broker with no identity resolved yet.
func NewBroker() *Broker {
	return &Broker{listeners: make(map[int]func(*models.Identity))}
}

// CurrentUser returns the last published identity, nil when signed out.
func (b *Broker) CurrentUser(_ context.Context) (*models.Identity, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current, nil
}

// OnChange registers a listener and returns its unsubscribe func.
func (b *Broker) OnChange(listener func(*models.Identity)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = listener
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Publish replaces the current identity (nil for sign-out) and notifies every
// subscriber with the new value.
func (b *Broker) Publish(identity *models.Identity) {
	b.mu.Lock()
	b.current = identity
	listeners := make([]func(*models.Identity), 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.Unlock()

	for _, l := range listeners {
		l(identity)
	}
}
