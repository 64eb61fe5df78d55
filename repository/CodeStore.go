package repository

import (
	"context"
	"time"
)

// CodeStore is the expiring key-value store behind code issuance.
//
// Every operation converts transport faults into sentinel results at this
// boundary: an absent value or a false ok, never an error. Callers that need
// to distinguish "key missing" from "store down" check IsConnected first.
type CodeStore interface {
	// Get retrieves the value. ok is false when the key is missing or the
	// store is unreachable.
	Get(ctx context.Context, key string) (value string, ok bool)

	// Exists reports whether the key is present. ok is false when the store
	// is unreachable.
	Exists(ctx context.Context, key string) (found bool, ok bool)

	// SetWithExpiry stores the value, then sets its TTL as a second command.
	// A false return may still leave the value set without an expiry; that
	// window is a known, accepted risk.
	SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) bool

	// Ping reports transport liveness.
	Ping(ctx context.Context) bool

	// IsConnected is a non-blocking read of the tracked connection state.
	IsConnected() bool

	// Quit closes the connection. It is safe when already disconnected and
	// never hangs the shutdown path.
	Quit()
}
