package identity

import (
	"context"

	"priisme/models"
)

// Fixed is a Provider pinned to one identity for its whole lifetime. The cart
// registry uses it for request-resolved identities, whose "change" event is
// the registry evicting the session instead.
type Fixed struct {
	identity *models.Identity
}

// NewFixed returns a Provider that always resolves to the given identity.
func NewFixed(id *models.Identity) *Fixed {
	return &Fixed{identity: id}
}

func (f *Fixed) CurrentUser(_ context.Context) (*models.Identity, error) {
	return f.identity, nil
}

// OnChange never fires for a Fixed provider.
func (f *Fixed) OnChange(_ func(*models.Identity)) func() {
	return func() {}
}
