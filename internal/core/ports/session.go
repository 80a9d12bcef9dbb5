package ports

import "github.com/yu-shop/storefront-api/internal/core/domain"

// SessionStore abstracts where the auth state is persisted so the mechanism
// (local file, Redis, anything else) can be swapped without touching the
// session manager.
type SessionStore interface {
	// Load returns the persisted state, or (nil, nil) when none exists.
	Load() (*domain.AuthState, error)
	// Save replaces the persisted state wholesale.
	Save(state domain.AuthState) error
	// Clear removes any persisted state. Clearing an empty store is not an error.
	Clear() error
}
