package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/attribly/correlate/core/logger"
	"github.com/attribly/correlate/core/session"
	"github.com/attribly/correlate/integration/database/pg"
	"github.com/attribly/correlate/integration/database/redis"
	"github.com/attribly/correlate/migrations"
)

// Store is the tiered session record store. Exactly one backend serves
// traffic at a time: the cache tier when its initial probe succeeds, the
// durable tier otherwise. A cache error at runtime demotes to the durable
// tier for the remainder of the process; there is no re-probe or promotion
// back. Availability over optimality: a flapping cache would otherwise turn
// every request into a connection gamble.
//
// Every per-operation failure softens: SaveSession returns false,
// RecentSessions returns an empty slice, CleanupExpired logs and moves on.
// Correlation is optional enrichment and must never fail the business
// transaction it supports.
type Store struct {
	cfg Config
	log *slog.Logger

	initOnce sync.Once
	initErr  error

	mu      sync.RWMutex
	active  Backend
	cache   Backend
	durable Backend
	closed  bool
}

// New creates an uninitialized store. Nothing is dialed until Initialize.
func New(cfg Config, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{cfg: cfg, log: log.With(logger.Component("sessionstore"))}
}

// NewWithBackends creates a store over pre-built backends, bypassing the
// dial logic in Initialize. Intended for tests and for embedding the store
// behind custom storage tiers. Either backend may be nil; the cache tier is
// preferred when present.
func NewWithBackends(cache, durable Backend, log *slog.Logger) *Store {
	s := New(Config{}, log)
	s.cache = cache
	s.durable = durable
	if cache != nil {
		s.active = cache
	} else {
		s.active = durable
	}
	s.initOnce.Do(func() {})
	return s
}

// Initialize dials both tiers and selects the active one. Safe to call
// concurrently and repeatedly; only the first call does work, later calls
// return its result.
//
// The durable tier is always configured and its failure is fatal — with no
// further fallback the process cannot serve correlation at all. The cache
// probe is bounded by the configured connect timeout; its failure only
// logs and leaves the durable tier active.
func (s *Store) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() { s.initErr = s.initialize(ctx) })
	return s.initErr
}

func (s *Store) initialize(ctx context.Context) error {
	pool, err := pg.Connect(ctx, s.cfg.PG)
	if err != nil {
		return errors.Join(ErrDurableTierUnavailable, err)
	}
	if s.cfg.Migrate {
		if err := pg.Migrate(ctx, pool, s.cfg.PG, migrations.FS, s.log); err != nil {
			pool.Close()
			return errors.Join(ErrDurableTierUnavailable, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.durable = newDurableBackend(pool)

	client, err := redis.Connect(ctx, s.cfg.Redis)
	if err != nil {
		s.log.Warn("cache tier unreachable, durable tier active for process lifetime",
			logger.Error(err))
		s.active = s.durable
		return nil
	}

	s.cache = newCacheBackend(client, s.cfg.Redis.ScanBatchSize)
	s.active = s.cache
	s.log.Info("session store initialized", logger.Backend(s.active.Kind()))
	return nil
}

// SaveSession writes a record to the active tier. Returns false on any
// failure; callers must treat that as "correlation data unavailable", never
// as a reason to abort their own flow.
func (s *Store) SaveSession(ctx context.Context, key string, rec session.Record, ttl time.Duration) bool {
	b := s.activeBackend()
	if b == nil {
		s.log.Error("session save before store initialization", logger.SessionKey(key))
		return false
	}

	if err := b.Save(ctx, key, rec, ttl); err != nil {
		s.log.Error("session save failed",
			logger.Error(err), logger.SessionKey(key), logger.Backend(b.Kind()))
		s.demote(b)
		return false
	}
	return true
}

// RecentSessions returns up to limit non-expired records, newest first.
// Returns an empty slice on any failure.
func (s *Store) RecentSessions(ctx context.Context, limit int) []session.Stored {
	b := s.activeBackend()
	if b == nil {
		return nil
	}
	if limit <= 0 {
		limit = s.cfg.RecentLimit
	}
	if limit <= 0 {
		limit = 100
	}

	records, err := b.Recent(ctx, limit)
	if err != nil {
		s.log.Error("recent sessions listing failed",
			logger.Error(err), logger.Backend(b.Kind()))
		s.demote(b)
		return nil
	}
	return records
}

// CleanupExpired sweeps expired rows from the durable tier. A no-op while
// the cache tier is active, since Redis expires keys natively.
func (s *Store) CleanupExpired(ctx context.Context) {
	b := s.activeBackend()
	if b == nil || b.Kind() == StorageCache {
		return
	}

	removed, err := b.DeleteExpired(ctx)
	if err != nil {
		s.log.Error("expired session cleanup failed", logger.Error(err))
		return
	}
	s.log.Info("expired sessions removed", logger.Count("removed", int(removed)))
}

// StorageType reports the active tier, "Cache" or "Durable". Empty before
// initialization.
func (s *Store) StorageType() string {
	b := s.activeBackend()
	if b == nil {
		return ""
	}
	return b.Kind()
}

// Close releases both tier connections. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.durable != nil {
		if err := s.durable.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.active = nil
	return errors.Join(errs...)
}

func (s *Store) activeBackend() Backend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// demote permanently switches to the durable tier after a cache-tier
// runtime error. Durable-tier errors leave the selection alone — there is
// nothing left to fall back to.
func (s *Store) demote(failed Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if failed != s.cache || s.durable == nil || s.active != s.cache {
		return
	}
	s.log.Warn("cache tier error, durable tier active for remainder of process")
	s.active = s.durable
}
