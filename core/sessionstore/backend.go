package sessionstore

import (
	"context"
	"time"

	"github.com/attribly/correlate/core/session"
)

// Storage tier names reported by Store.StorageType.
const (
	StorageCache   = "Cache"
	StorageDurable = "Durable"
)

// Backend is the capability contract shared by the two storage tiers. The
// store selects one backend at initialization and never load-balances
// between them; Backend exists so the tiers stay interchangeable and so
// tests can inject fakes via NewWithBackends.
type Backend interface {
	// Save persists a record under key with the given TTL.
	Save(ctx context.Context, key string, rec session.Record, ttl time.Duration) error

	// Recent returns up to limit non-expired records ordered by record
	// timestamp descending.
	Recent(ctx context.Context, limit int) ([]session.Stored, error)

	// DeleteExpired removes expired records and returns the count removed.
	// Tiers with native expiry implement this as a no-op.
	DeleteExpired(ctx context.Context) (int64, error)

	// Kind returns StorageCache or StorageDurable.
	Kind() string

	Close() error
}
