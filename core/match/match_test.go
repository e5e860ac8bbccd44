package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attribly/correlate/core/match"
	"github.com/attribly/correlate/core/session"
)

// incoming carries all five scored fields, so candidate scores are computed
// against a denominator of 100 and are easy to dial in.
var incoming = session.Record{
	ThumbmarkID:         "tm123",
	CanvasHash:          "c1",
	HardwareConcurrency: "8",
	ScreenResolution:    "1920x1080",
	IP:                  "203.0.113.10",
}

// scoring70 and scoring85 build candidates that score exactly 70 and 85
// against incoming: thumbmark+canvas+screen = 70, adding concurrency = 85.
func scoring70(key string) session.Stored {
	return session.Stored{Key: key, Record: session.Record{
		ThumbmarkID:         "tm123",
		CanvasHash:          "c1",
		HardwareConcurrency: "4",
		ScreenResolution:    "1920x1080",
		IP:                  "198.51.100.7",
	}}
}

func scoring85(key string) session.Stored {
	return session.Stored{Key: key, Record: session.Record{
		ThumbmarkID:         "tm123",
		CanvasHash:          "c1",
		HardwareConcurrency: "8",
		ScreenResolution:    "1920x1080",
		IP:                  "198.51.100.7",
	}}
}

func TestFindBestMatch_FirstOfTiedScoresWins(t *testing.T) {
	candidates := []session.Stored{
		scoring70("session:tm123:1"),
		scoring85("session:tm123:2"),
		scoring85("session:tm123:3"),
	}

	m := match.FindBestMatch(incoming, candidates, 65)

	require.NotNil(t, m)
	assert.Equal(t, 85.0, m.Score())
	assert.Equal(t, "session:tm123:2", m.Key)
}

func TestFindBestMatch_HigherScoreReplacesEarlier(t *testing.T) {
	candidates := []session.Stored{
		scoring70("session:tm123:1"),
		scoring85("session:tm123:2"),
	}

	m := match.FindBestMatch(incoming, candidates, 65)

	require.NotNil(t, m)
	assert.Equal(t, "session:tm123:2", m.Key)
}

func TestFindBestMatch_AllBelowThreshold(t *testing.T) {
	candidates := []session.Stored{
		{Key: "session:a:1", Record: session.Record{ThumbmarkID: "other", CanvasHash: "x", HardwareConcurrency: "2"}},
		{Key: "session:b:2", Record: session.Record{ThumbmarkID: "another", CanvasHash: "y", HardwareConcurrency: "2"}},
	}

	assert.Nil(t, match.FindBestMatch(incoming, candidates, 65))
}

func TestFindBestMatch_NoCandidates(t *testing.T) {
	assert.Nil(t, match.FindBestMatch(incoming, nil, match.DefaultThreshold))
}

func TestFindBestMatch_ExactThresholdQualifies(t *testing.T) {
	candidates := []session.Stored{scoring70("session:tm123:1")}

	m := match.FindBestMatch(incoming, candidates, 70)

	require.NotNil(t, m)
	assert.Equal(t, 70.0, m.Score())
}

func TestFindBestMatch_CarriesRecordForAttribution(t *testing.T) {
	stored := scoring85("session:tm123:2")
	stored.Record.UTMs = map[string]string{"utm_source": "fb"}
	stored.Record.FBCLID = "fb.1.abc"

	m := match.FindBestMatch(incoming, []session.Stored{stored}, 65)

	require.NotNil(t, m)
	assert.Equal(t, "fb", m.Record.UTMs["utm_source"])
	assert.Equal(t, "fb.1.abc", m.Record.FBCLID)
}
