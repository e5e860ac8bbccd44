package similarity

import (
	"math"
	"strconv"
	"strings"

	"github.com/attribly/correlate/core/session"
)

// Field weights. A field contributes its weight to the denominator only when
// both records carry it; absence on either side excludes the field from
// scoring entirely so that sparse records are not penalized.
const (
	weightThumbmark   = 40.0
	weightCanvas      = 20.0
	weightConcurrency = 15.0
	weightScreen      = 10.0
	weightAspect      = 5.0
	weightIP          = 15.0
	weightSubnet      = 7.5
)

// aspectTolerance bounds the width/height ratio difference for a partial
// screen-resolution match. 1920x1080 and 1366x768 (1.778 vs 1.779) match;
// 16:9 vs 4:3 does not.
const aspectTolerance = 0.01

// Detail tags the outcome of a single field comparison.
type Detail string

const (
	ExactMatch  Detail = "exact_match"
	AspectMatch Detail = "aspect_match"
	SubnetMatch Detail = "subnet_match"
	NoMatch     Detail = "no_match"
	MissingData Detail = "missing_data"
)

// Result carries the weighted similarity score (0..100, two decimals) and a
// per-field breakdown keyed by the canonical field name.
type Result struct {
	Score   float64
	Details map[string]Detail
}

// Score computes the weighted fingerprint similarity between two records.
// Every comparison is order-independent, so Score(a, b) == Score(b, a)
// exactly. When no field is present on both sides the score is 0.
func Score(a, b session.Record) Result {
	var earned, possible float64
	details := make(map[string]Detail, 5)

	score := func(field string, av, bv string, full float64, partial func(string, string) (Detail, float64)) {
		if av == "" || bv == "" {
			details[field] = MissingData
			return
		}
		possible += full
		if av == bv {
			earned += full
			details[field] = ExactMatch
			return
		}
		if partial != nil {
			if tag, pts := partial(av, bv); pts > 0 {
				earned += pts
				details[field] = tag
				return
			}
		}
		details[field] = NoMatch
	}

	score("thumbmark_id", a.ThumbmarkID, b.ThumbmarkID, weightThumbmark, nil)
	score("canvas_hash", a.CanvasHash, b.CanvasHash, weightCanvas, nil)
	score("hardware_concurrency", a.HardwareConcurrency, b.HardwareConcurrency, weightConcurrency, nil)
	score("screen_resolution", a.ScreenResolution, b.ScreenResolution, weightScreen, func(x, y string) (Detail, float64) {
		if SameAspectRatio(x, y) {
			return AspectMatch, weightAspect
		}
		return NoMatch, 0
	})
	score("ip", a.IP, b.IP, weightIP, func(x, y string) (Detail, float64) {
		if SameSubnet(x, y) {
			return SubnetMatch, weightSubnet
		}
		return NoMatch, 0
	})

	if possible == 0 {
		return Result{Score: 0, Details: details}
	}

	return Result{
		Score:   math.Round(earned/possible*100*100) / 100,
		Details: details,
	}
}

// SameSubnet reports whether two IPv4 addresses share a /24, approximated as
// equality of the first three octets. Only dotted-quad IPv4 with octets in
// 0-255 qualifies; IPv6 or malformed input never matches.
func SameSubnet(a, b string) bool {
	ao, ok := ipv4Octets(a)
	if !ok {
		return false
	}
	bo, ok := ipv4Octets(b)
	if !ok {
		return false
	}
	return ao[0] == bo[0] && ao[1] == bo[1] && ao[2] == bo[2]
}

// SameAspectRatio reports whether two "WxH" resolutions have the same
// width/height ratio within aspectTolerance. Malformed input never matches.
func SameAspectRatio(a, b string) bool {
	aw, ah, ok := parseResolution(a)
	if !ok {
		return false
	}
	bw, bh, ok := parseResolution(b)
	if !ok {
		return false
	}
	return math.Abs(float64(aw)/float64(ah)-float64(bw)/float64(bh)) < aspectTolerance
}

func ipv4Octets(s string) ([4]int, bool) {
	var octets [4]int
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return octets, false
	}
	for i, p := range parts {
		n, ok := parseOctet(p)
		if !ok {
			return octets, false
		}
		octets[i] = n
	}
	return octets, true
}

// parseOctet accepts plain decimal digits only; strconv.Atoi would also
// accept a leading sign, which is not a valid octet.
func parseOctet(s string) (int, bool) {
	if s == "" || len(s) > 3 {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > 255 {
		return 0, false
	}
	return n, true
}

func parseResolution(s string) (width, height int, ok bool) {
	w, h, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	height, err = strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
