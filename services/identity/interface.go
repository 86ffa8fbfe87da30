package identity

import (
	"context"

	"priisme/models"
)

// Provider resolves the authenticated identity an operation runs under.
// Implementations are owned by the external identity platform; this service
// only consumes the contract.
type Provider interface {
	// CurrentUser returns the resolved identity, or nil when signed out.
	CurrentUser(ctx context.Context) (*models.Identity, error)
	// OnChange registers a listener invoked on every identity change
	// (sign-in, sign-out, session refresh) and returns an unsubscribe func.
	OnChange(listener func(*models.Identity)) (unsubscribe func())
}
