// Package session defines the normalized browsing-session fingerprint record
// and the helpers that shape raw client payloads into it.
//
// A Record is created once when a tracking payload arrives (landing page,
// redirect handler), persisted under a composite "session:" key with a TTL,
// and later read back as a correlation candidate for delayed events such as
// payment confirmations that lack a stable identifier.
//
// Records are append-only. Nothing in this module mutates a record after
// Normalize returns it; the store only creates and expires them.
//
// Typical write-path usage:
//
//	rec := session.Normalize(payload)
//	if !rec.Valid() {
//		return // not enough signal to ever match this session
//	}
//	key := session.Key(rec.ThumbmarkID, rec.Timestamp)
//	store.SaveSession(ctx, key, rec, 48*time.Hour)
//
// Validity is deliberately permissive: a record qualifies with either a real
// thumbmark ID or a real canvas hash. Client libraries emit the sentinels
// "unknown" and "canvas_unavailable" when a signal cannot be collected, and
// those do not count as presence.
package session
