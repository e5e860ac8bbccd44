package match

import (
	"github.com/attribly/correlate/core/session"
	"github.com/attribly/correlate/pkg/similarity"
)

// DefaultThreshold is the minimum similarity score a candidate needs before
// it can be considered the same device.
const DefaultThreshold = 65.0

// Match is the winning candidate of a FindBestMatch scan.
type Match struct {
	Key    string
	Record session.Record
	Result similarity.Result
}

// Score returns the winning similarity score.
func (m Match) Score() float64 {
	return m.Result.Score
}

// FindBestMatch scans candidates in order and returns the one with the
// highest similarity to incoming at or above threshold, or nil when none
// qualifies.
//
// A later candidate replaces the current best only with a strictly greater
// score, so on a tie the earliest-encountered candidate wins. Callers that
// want recency-biased ties should order candidates newest-first, which is
// what the store's recent-session listing already does.
func FindBestMatch(incoming session.Record, candidates []session.Stored, threshold float64) *Match {
	var best *Match
	bestScore := 0.0

	for _, c := range candidates {
		res := similarity.Score(incoming, c.Record)
		if res.Score >= threshold && res.Score > bestScore {
			best = &Match{Key: c.Key, Record: c.Record, Result: res}
			bestScore = res.Score
		}
	}

	return best
}
