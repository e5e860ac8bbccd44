// Package similarity scores how likely two session fingerprint records
// describe the same device. It is pure computation: no I/O, no clock, no
// allocation beyond the per-field breakdown.
//
// Scoring is weighted and field-by-field. A field earns its full weight on
// an exact string match; screen resolution and IP also earn partial credit
// (same aspect ratio, same IPv4 /24). A field missing on either side is
// excluded from the denominator rather than scored as a mismatch, so a
// sparse record can still reach 100 on the fields it does carry.
//
//	res := similarity.Score(incoming, stored)
//	if res.Score >= 65 {
//		// likely the same device
//	}
//
// The score is symmetric and deterministic; callers may cache or reorder
// comparisons freely.
package similarity
