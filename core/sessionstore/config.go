package sessionstore

import (
	"time"

	"github.com/attribly/correlate/integration/database/pg"
	"github.com/attribly/correlate/integration/database/redis"
)

// Config holds settings for both storage tiers. The durable tier is always
// configured even when the cache tier is healthy; it is the only fallback.
type Config struct {
	Redis redis.Config
	PG    pg.Config

	// SessionTTL bounds how long a record stays retrievable for matching.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"48h"`

	// RecentLimit caps candidate listings; it bounds matcher cost.
	RecentLimit int `env:"SESSION_RECENT_LIMIT" envDefault:"100"`

	// Migrate controls whether durable-tier schema migrations run during
	// Initialize.
	Migrate bool `env:"SESSION_STORE_MIGRATE" envDefault:"true"`
}
