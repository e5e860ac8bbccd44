package correlate

import (
	"context"
	"log/slog"
	"time"

	"github.com/attribly/correlate/core/logger"
	"github.com/attribly/correlate/core/match"
	"github.com/attribly/correlate/core/session"
	"github.com/attribly/correlate/core/sessionstore"
)

// Engine ties the normalizer, store and matcher into the two boundary
// operations collaborators use: TrackSession on the write path and
// Correlate on the read path.
type Engine struct {
	store       *sessionstore.Store
	log         *slog.Logger
	ttl         time.Duration
	threshold   float64
	recentLimit int
}

// New creates an engine over an initialized store. Defaults: 48h TTL,
// threshold 65, candidate limit 100.
func New(store *sessionstore.Store, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		log:         slog.Default(),
		ttl:         48 * time.Hour,
		threshold:   match.DefaultThreshold,
		recentLimit: 100,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(logger.Component("correlate"))
	return e
}

// TrackSession normalizes and stores a raw fingerprint payload, returning
// the storage key and whether the record was persisted. Payloads without
// enough fingerprint signal are skipped, not failed: the caller's flow
// continues either way.
func (e *Engine) TrackSession(ctx context.Context, raw map[string]any) (string, bool) {
	rec := session.Normalize(raw)
	if !rec.Valid() {
		e.log.Debug("session skipped", logger.Error(session.ErrInsufficientData))
		return "", false
	}

	key := session.Key(rec.ThumbmarkID, rec.Timestamp)
	return key, e.store.SaveSession(ctx, key, rec, e.ttl)
}

// Correlate attempts to re-associate a later-arriving payload (for example a
// payment confirmation without a stable identifier) with a stored browsing
// session. Returns nil when no candidate reaches the threshold; callers
// proceed without attribution in that case.
func (e *Engine) Correlate(ctx context.Context, raw map[string]any) *match.Match {
	incoming := session.Normalize(raw)
	candidates := e.store.RecentSessions(ctx, e.recentLimit)

	m := match.FindBestMatch(incoming, candidates, e.threshold)
	if m == nil {
		e.log.Debug("no session correlated", logger.Count("candidates", len(candidates)))
		return nil
	}

	e.log.Info("session correlated",
		logger.SessionKey(m.Key),
		logger.Score(m.Score()),
		logger.Count("candidates", len(candidates)))
	return m
}

// Cleanup sweeps expired records from the durable tier. Intended to be
// called periodically; a no-op while the cache tier is active.
func (e *Engine) Cleanup(ctx context.Context) {
	e.store.CleanupExpired(ctx)
}

// StorageType reports which storage tier currently serves the engine.
func (e *Engine) StorageType() string {
	return e.store.StorageType()
}
