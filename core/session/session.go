package session

import (
	"time"
)

// Sentinel values emitted by fingerprinting clients when a signal could not
// be collected. Records carrying only sentinels are useless for correlation
// and are rejected by Valid.
const (
	UnknownThumbmark  = "unknown"
	CanvasUnavailable = "canvas_unavailable"
)

// UnknownConcurrency is the default for hardware_concurrency when the client
// did not report a CPU count. Concurrency is always carried and compared as a
// string so that numeric payloads ("8") and string payloads ("8") never
// diverge.
const UnknownConcurrency = "unknown"

// Record is a normalized browsing-session fingerprint. It is append-only:
// created once at the first trackable page interaction, read by the matcher
// until its TTL elapses, never mutated.
//
// JSON tags mirror the persisted payload schema shared with the cache
// backend and the fingerprinting clients.
type Record struct {
	// ID is a dedicated random identifier assigned at normalization time.
	// The natural key (see Key) is not globally unique, so the ID is the
	// only collision-free handle on a record.
	ID string `json:"id,omitempty"`

	// ThumbmarkID is the client-generated device fingerprint identifier.
	ThumbmarkID string `json:"thumbmark_id,omitempty"`

	// CanvasHash is the hash of a canvas-rendering fingerprint.
	CanvasHash string `json:"canvas_hash,omitempty"`

	// HardwareConcurrency is the logical CPU count as a string.
	HardwareConcurrency string `json:"hardware_concurrency"`

	// ScreenResolution is "WxH", e.g. "1920x1080".
	ScreenResolution string `json:"screen_resolution,omitempty"`

	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	// UTMs carries marketing attribution tags recovered on a later match.
	UTMs map[string]string `json:"utms,omitempty"`

	FBCLID string `json:"fbclid,omitempty"`

	// Timestamp is the logical creation time in epoch milliseconds and part
	// of the record's natural key.
	Timestamp int64 `json:"timestamp"`
}

// Stored pairs a record with the key it was persisted under. Store listings
// and match candidates use this shape.
type Stored struct {
	Key    string
	Record Record
}

// Valid reports whether the record carries enough fingerprint signal to be
// stored and matched: a real thumbmark ID or a real canvas hash. Sentinel
// values do not count.
func (r Record) Valid() bool {
	if r.ThumbmarkID != "" && r.ThumbmarkID != UnknownThumbmark {
		return true
	}
	return r.CanvasHash != "" && r.CanvasHash != CanvasUnavailable
}

// ExpiresAt derives the record's expiry from its logical creation time.
func (r Record) ExpiresAt(ttl time.Duration) time.Time {
	return time.UnixMilli(r.Timestamp).Add(ttl)
}
