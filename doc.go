// Package correlate is a probabilistic session-correlation engine: it
// re-associates a later-arriving event (such as a payment confirmation that
// lacks a stable identifier) with an earlier browsing session by comparing
// device fingerprints.
//
// The engine is best-effort by design. Every failure on the storage path
// softens to "no correlation available"; the business transaction a
// correlation enriches must never block on it.
//
// # Architecture
//
// Raw fingerprint payloads are normalized into session.Record values and
// persisted with a TTL by sessionstore.Store, which prefers a Redis cache
// tier and falls back — permanently, per process — to a PostgreSQL durable
// tier. On the read path, recent candidates are scanned by match
// FindBestMatch using the weighted similarity scorer in pkg/similarity.
//
// # Usage
//
//	store := sessionstore.New(cfg, log)
//	if err := store.Initialize(ctx); err != nil {
//		return err
//	}
//	defer store.Close()
//
//	engine := correlate.New(store, correlate.WithThreshold(65))
//
//	// Write path: a landing/redirect handler tracks the session.
//	key, ok := engine.TrackSession(ctx, payload)
//
//	// Read path: a delayed confirmation handler recovers attribution.
//	if m := engine.Correlate(ctx, confirmation); m != nil {
//		forwardAttribution(m.Record.UTMs, m.Record.FBCLID)
//	}
package correlate
