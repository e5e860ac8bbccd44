package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix namespaces session records in the cache keyspace. The cache
// backend scans this prefix when listing recent sessions.
const KeyPrefix = "session:"

// Normalize maps a raw fingerprint payload (typically a decoded JSON object)
// into the canonical record schema. Absent optional fields stay empty,
// hardware concurrency defaults to UnknownConcurrency, the timestamp
// defaults to now, and a random ID is assigned when the payload carries
// none. Normalization is idempotent: Normalize(r.Map()) == r.
func Normalize(raw map[string]any) Record {
	r := Record{
		ID:                  stringValue(raw["id"]),
		ThumbmarkID:         stringValue(raw["thumbmark_id"]),
		CanvasHash:          stringValue(raw["canvas_hash"]),
		HardwareConcurrency: stringValue(raw["hardware_concurrency"]),
		ScreenResolution:    stringValue(raw["screen_resolution"]),
		IP:                  stringValue(raw["ip"]),
		UserAgent:           stringValue(raw["user_agent"]),
		FBCLID:              stringValue(raw["fbclid"]),
		UTMs:                utmValues(raw["utms"]),
		Timestamp:           intValue(raw["timestamp"]),
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.HardwareConcurrency == "" {
		r.HardwareConcurrency = UnknownConcurrency
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UnixMilli()
	}

	return r
}

// Map returns the record in its canonical raw-payload form, the inverse of
// Normalize. Zero-valued optional fields are omitted.
func (r Record) Map() map[string]any {
	m := map[string]any{
		"id":                   r.ID,
		"hardware_concurrency": r.HardwareConcurrency,
		"timestamp":            r.Timestamp,
	}
	if r.ThumbmarkID != "" {
		m["thumbmark_id"] = r.ThumbmarkID
	}
	if r.CanvasHash != "" {
		m["canvas_hash"] = r.CanvasHash
	}
	if r.ScreenResolution != "" {
		m["screen_resolution"] = r.ScreenResolution
	}
	if r.IP != "" {
		m["ip"] = r.IP
	}
	if r.UserAgent != "" {
		m["user_agent"] = r.UserAgent
	}
	if r.FBCLID != "" {
		m["fbclid"] = r.FBCLID
	}
	if len(r.UTMs) > 0 {
		m["utms"] = r.UTMs
	}
	return m
}

// Key builds the composite storage key "session:<thumbmark>:<timestamp>".
// The key is NOT globally unique: two records with a missing thumbmark and a
// colliding millisecond timestamp share a key. Lookups tolerate this because
// correlation is heuristic; Record.ID exists for callers that need a
// collision-free handle.
func Key(thumbmarkID string, timestampMS int64) string {
	if thumbmarkID == "" {
		thumbmarkID = UnknownThumbmark
	}
	if timestampMS == 0 {
		timestampMS = time.Now().UnixMilli()
	}
	return KeyPrefix + thumbmarkID + ":" + strconv.FormatInt(timestampMS, 10)
}

// stringValue coerces payload scalars to their string form. JSON numbers
// arrive as float64; integral values must render without a decimal point so
// that hardware_concurrency 8 and "8" compare equal.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// intValue coerces payload scalars to epoch-millisecond integers.
func intValue(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// utmValues accepts both map[string]string (already normalized) and
// map[string]any (decoded JSON) payload shapes.
func utmValues(v any) map[string]string {
	switch t := v.(type) {
	case map[string]string:
		if len(t) == 0 {
			return nil
		}
		out := make(map[string]string, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out
	case map[string]any:
		if len(t) == 0 {
			return nil
		}
		out := make(map[string]string, len(t))
		for k, val := range t {
			out[k] = stringValue(val)
		}
		return out
	default:
		return nil
	}
}
