package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/ternarybob/radar/internal/insights"
)

// CoverageWindowDays is the trailing window used for coverage and baselines.
const CoverageWindowDays = 30

// minBaselineSamples is the fewest window values needed for percentiles.
const minBaselineSamples = 3

// ContextFromPoints derives data-quality context from a chronological series.
// FreshnessH is the age of the newest valid point. Coverage30d is the share of
// business days in the trailing window that carry a valid point, capped at 100.
// MA30, P30 and P70 are computed over the window values when enough exist.
func ContextFromPoints(points []Point, now time.Time, cal Calendar) *insights.Context {
	ctx := &insights.Context{}

	if last, ok := LastValid(points); ok {
		hours := math.Max(0, now.Sub(last.TS).Hours())
		ctx.FreshnessH = insights.Float(hours)
	}

	windowStart := now.AddDate(0, 0, -CoverageWindowDays)
	days := make(map[time.Time]struct{})
	values := make([]float64, 0, len(points))

	for _, p := range points {
		if p.TS.Before(windowStart) || p.TS.After(now) {
			continue
		}
		v := NormalizeValue(p.Value)
		if v == nil {
			continue
		}
		values = append(values, *v)
		if cal.IsBusinessDay(p.TS) {
			days[dateOf(p.TS)] = struct{}{}
		}
	}

	if expected := cal.CountBusinessDays(windowStart, now); expected > 0 {
		ctx.Coverage30d = insights.Float(math.Min(100, float64(len(days))/float64(expected)*100))
	}

	if len(values) > 0 {
		ctx.MA30 = insights.Float(mean(values))
	}
	if len(values) >= minBaselineSamples {
		sort.Float64s(values)
		ctx.P30 = insights.Float(percentile(values, 30))
		ctx.P70 = insights.Float(percentile(values, 70))
	}

	return ctx
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile interpolates linearly between closest ranks of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}
