// Package cache provides the keyed TTL store used by the affiliate
// adapters. Values are opaque byte slices; callers do their own encoding.
package cache

import (
	"context"
	"time"
)

// Cache is a keyed store with per-entry expiry. Implementations absorb
// backend failures: a failed Get is a miss, a failed Set is logged and
// dropped. A stale hit within the TTL window is expected behavior.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
