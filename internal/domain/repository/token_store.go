package repository

import "context"

// TokenStore persists the bearer token across process restarts. The token is
// the only persisted artifact of the gateway; it lives under a single
// well-known location and is cleared on logout.
type TokenStore interface {
	// Save writes the token, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Load reads the persisted token. A missing token is not an error;
	// it returns the empty string.
	Load(ctx context.Context) (string, error)

	// Clear removes the persisted token. Idempotent.
	Clear(ctx context.Context) error
}
