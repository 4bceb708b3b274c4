package synth

import "github.com/google/uuid"

// A TokenSource mints session tokens. Tests substitute a fixed source to
// get deterministic transfer logs.
type TokenSource func() string

// NewSessionToken mints a UUIDv7 token. UUIDv7 carries a timestamp in its
// most significant bits, so tokens sort by session creation time and a
// transfer log stays easy to scan. Panics if the random source fails.
func NewSessionToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
