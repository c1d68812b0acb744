package render

import (
	"math"
	"strconv"
	"strings"
)

// Ampersand comes first so entities produced by the later pairs are not
// escaped twice. strings.Replacer scans once, which gives the same result.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Number formats a score with exactly two decimals. NaN and infinities
// render as 0.00.
func Number(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// Tier buckets actual points against projection.
type Tier string

const (
	TierNone     Tier = ""
	TierAmazing  Tier = "amazing"
	TierGreat    Tier = "great"
	TierGood     Tier = "good"
	TierBad      Tier = "bad"
	TierVeryBad  Tier = "very-bad"
	TierTerrible Tier = "terrible"
)

var tierThresholds = []struct {
	ratio float64
	tier  Tier
}{
	{1.35, TierAmazing},
	{1.15, TierGreat},
	{0.95, TierGood},
	{0.75, TierBad},
	{0.55, TierVeryBad},
}

func PerformanceClass(points, proj float64) Tier {
	if proj <= 0 {
		return TierNone
	}
	ratio := points / proj
	for _, t := range tierThresholds {
		if ratio >= t.ratio {
			return t.tier
		}
	}
	return TierTerrible
}

// Class is the CSS class for the tier, empty for TierNone.
func (t Tier) Class() string {
	if t == TierNone {
		return ""
	}
	return "perf-" + string(t)
}
