package metrics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ternarybob/radar/internal/insights"
)

// DefaultTrendEpsilon is the smallest difference read as a change.
const DefaultTrendEpsilon = 0.001

// Sample is a point whose value has been normalized to a number.
type Sample struct {
	TS       time.Time
	Value    float64
	Metadata insights.Metadata
}

// NormalizeValue reads a number or numeric string. Anything else, and any
// non-finite result, returns nil.
func NormalizeValue(value any) *float64 {
	var f float64

	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ComputeTrend compares current with reference. A missing side, or a
// difference below eps, is flat.
func ComputeTrend(current, reference *float64, eps float64) Trend {
	if current == nil || reference == nil {
		return TrendFlat
	}

	diff := *current - *reference
	if math.Abs(diff) < eps {
		return TrendFlat
	}
	if diff > 0 {
		return TrendUp
	}
	return TrendDown
}

// LastValid returns the newest point with a usable value. Points are assumed
// to be in chronological order.
func LastValid(points []Point) (Sample, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if v := NormalizeValue(points[i].Value); v != nil {
			return Sample{TS: points[i].TS, Value: *v, Metadata: points[i].Metadata}, true
		}
	}
	return Sample{}, false
}

// LastTwo returns the two newest valid points, newest first. Either may be nil.
func LastTwo(points []Point) (latest, previous *Sample) {
	found := make([]*Sample, 0, 2)

	for i := len(points) - 1; i >= 0 && len(found) < 2; i-- {
		if v := NormalizeValue(points[i].Value); v != nil {
			found = append(found, &Sample{TS: points[i].TS, Value: *v, Metadata: points[i].Metadata})
		}
	}

	switch len(found) {
	case 2:
		return found[0], found[1]
	case 1:
		return found[0], nil
	default:
		return nil, nil
	}
}

// PercentageChange returns the change from reference to current in percent.
// A zero reference yields 0.
func PercentageChange(current, reference float64) float64 {
	if reference == 0 {
		return 0
	}
	return (current - reference) / reference * 100
}

// MetricTrend compares two latest items. Missing or unparseable values are flat.
func MetricTrend(latest, reference *LatestItem, eps float64) Trend {
	if latest == nil || reference == nil {
		return TrendFlat
	}
	return ComputeTrend(NormalizeValue(latest.Value), NormalizeValue(reference.Value), eps)
}
