package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attribly/correlate/core/session"
	"github.com/attribly/correlate/pkg/similarity"
)

func fullRecord(ts int64) session.Record {
	return session.Record{
		ThumbmarkID:         "tm123",
		CanvasHash:          "c1",
		HardwareConcurrency: "8",
		ScreenResolution:    "1920x1080",
		IP:                  "203.0.113.10",
		Timestamp:           ts,
	}
}

func TestScore_IdenticalRecords(t *testing.T) {
	// Timestamps do not participate in scoring.
	a := fullRecord(1700000000000)
	b := fullRecord(1700000099999)

	res := similarity.Score(a, b)

	assert.Equal(t, 100.0, res.Score)
	for field, detail := range res.Details {
		assert.Equal(t, similarity.ExactMatch, detail, field)
	}
}

func TestScore_AllFieldsDifferent(t *testing.T) {
	a := fullRecord(0)
	b := session.Record{
		ThumbmarkID:         "tm999",
		CanvasHash:          "c2",
		HardwareConcurrency: "4",
		ScreenResolution:    "1024x768",
		IP:                  "198.51.100.7",
	}

	res := similarity.Score(a, b)

	assert.Equal(t, 0.0, res.Score)
}

func TestScore_NoMutuallyPresentFields(t *testing.T) {
	a := session.Record{ThumbmarkID: "tm1", CanvasHash: "c1"}
	b := session.Record{IP: "203.0.113.10", ScreenResolution: "1920x1080"}

	res := similarity.Score(a, b)

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, similarity.MissingData, res.Details["thumbmark_id"])
	assert.Equal(t, similarity.MissingData, res.Details["canvas_hash"])
	assert.Equal(t, similarity.MissingData, res.Details["ip"])
	assert.Equal(t, similarity.MissingData, res.Details["screen_resolution"])
}

func TestScore_MissingFieldsExcludedFromDenominator(t *testing.T) {
	// Only thumbmark is mutually present; matching it alone yields 100.
	a := session.Record{ThumbmarkID: "tm1", IP: "203.0.113.10"}
	b := session.Record{ThumbmarkID: "tm1", ScreenResolution: "1920x1080"}

	res := similarity.Score(a, b)

	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, similarity.ExactMatch, res.Details["thumbmark_id"])
	assert.Equal(t, similarity.MissingData, res.Details["ip"])
	assert.Equal(t, similarity.MissingData, res.Details["screen_resolution"])
}

func TestScore_SubnetPartialCredit(t *testing.T) {
	a := session.Record{ThumbmarkID: "tm1", IP: "192.168.1.5"}
	b := session.Record{ThumbmarkID: "tm1", IP: "192.168.1.240"}

	res := similarity.Score(a, b)

	// (40 + 7.5) / (40 + 15) = 86.36
	assert.Equal(t, 86.36, res.Score)
	assert.Equal(t, similarity.SubnetMatch, res.Details["ip"])
}

func TestScore_AspectPartialCredit(t *testing.T) {
	a := session.Record{ThumbmarkID: "tm1", ScreenResolution: "1920x1080"}
	b := session.Record{ThumbmarkID: "tm1", ScreenResolution: "1366x768"}

	res := similarity.Score(a, b)

	// (40 + 5) / (40 + 10) = 90
	assert.Equal(t, 90.0, res.Score)
	assert.Equal(t, similarity.AspectMatch, res.Details["screen_resolution"])
}

func TestScore_Symmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b session.Record
	}{
		{"identical", fullRecord(1), fullRecord(2)},
		{"partial subnet", session.Record{IP: "192.168.1.5", ThumbmarkID: "tm1"}, session.Record{IP: "192.168.1.9", ThumbmarkID: "tm2"}},
		{"partial aspect", session.Record{ScreenResolution: "1920x1080", CanvasHash: "c1"}, session.Record{ScreenResolution: "1366x768", CanvasHash: "c1"}},
		{"sparse vs full", session.Record{ThumbmarkID: "tm1"}, fullRecord(0)},
		{"empty vs full", session.Record{}, fullRecord(0)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab := similarity.Score(tt.a, tt.b)
			ba := similarity.Score(tt.b, tt.a)
			assert.Equal(t, ab.Score, ba.Score)
			assert.Equal(t, ab.Details, ba.Details)
		})
	}
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	// Thumbmark match out of thumbmark+canvas: 40/60 = 66.666... -> 66.67
	a := session.Record{ThumbmarkID: "tm1", CanvasHash: "c1"}
	b := session.Record{ThumbmarkID: "tm1", CanvasHash: "c2"}

	res := similarity.Score(a, b)

	assert.Equal(t, 66.67, res.Score)
}

func TestSameSubnet(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"192.168.1.5", "192.168.1.240", true},
		{"192.168.1.5", "192.168.2.5", false},
		{"::1", "::1", false},
		{"2001:db8::1", "2001:db8::2", false},
		{"192.168.1", "192.168.1.5", false},
		{"192.168.1.256", "192.168.1.5", false},
		{"", "", false},
		{"not-an-ip", "192.168.1.5", false},
		{"192.168.1.5.6", "192.168.1.5", false},
		{"0.0.0.1", "0.0.0.200", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, similarity.SameSubnet(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestSameAspectRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1920x1080", "1366x768", true},  // 1.778 vs 1.779
		{"1920x1080", "1024x768", false}, // 16:9 vs 4:3
		{"1920x1080", "1920x1080", true},
		{"1920x1080", "", false},
		{"1920x1080", "bogus", false},
		{"1920x0", "1920x1080", false},
		{"-1920x1080", "1920x1080", false},
		{"1920x1080x60", "1920x1080", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, similarity.SameAspectRatio(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestScore_HardwareConcurrencyStringComparison(t *testing.T) {
	// "8" and "08" are distinct strings; no numeric coercion happens here.
	a := session.Record{ThumbmarkID: "tm1", HardwareConcurrency: "8"}
	b := session.Record{ThumbmarkID: "tm1", HardwareConcurrency: "08"}

	res := similarity.Score(a, b)

	require.Equal(t, similarity.NoMatch, res.Details["hardware_concurrency"])
	// 40 / 55 = 72.73
	assert.Equal(t, 72.73, res.Score)
}
