// Package insights turns raw economic indicators into human-readable
// interpretations: headline, summary, rationale, risk and confidence.
// All classification is pure; the only shared state is the interpreter
// registry cache.
package insights

import (
	"encoding/json"
	"math"
)

// Risk is the qualitative severity of a metric's current value.
type Risk string

const (
	RiskPositive Risk = "positive"
	RiskWarning  Risk = "warning"
	RiskNegative Risk = "negative"
	RiskNeutral  Risk = "neutral"
)

// Confidence reflects data quality, never the value itself.
type Confidence string

const (
	ConfidenceAlta  Confidence = "alta"
	ConfidenceMedia Confidence = "media"
	ConfidenceBaja  Confidence = "baja"
)

// Icon is a presentation hint for direction.
type Icon string

const (
	IconUp   Icon = "up"
	IconDown Icon = "down"
	IconFlat Icon = "flat"
	IconNA   Icon = "na"
)

// Color is a presentation hint derived from risk.
type Color string

const (
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
	ColorGray  Color = "gray"
)

// Priority orders watch items.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Magnitude buckets the absolute size of a change.
type Magnitude string

const (
	MagnitudeFuerte   Magnitude = "fuerte"
	MagnitudeModerado Magnitude = "moderado"
	MagnitudeLeve     Magnitude = "leve"
	MagnitudeMinimo   Magnitude = "mínimo"
)

// Context carries data-quality metadata and optional baselines.
// Every field is optional.
type Context struct {
	FreshnessH  *float64 `json:"freshness_h,omitempty"`  // Hours since the last update
	Coverage30d *float64 `json:"coverage_30d,omitempty"` // Percent of expected points present over 30 days
	MA30        *float64 `json:"ma30,omitempty"`         // 30-day moving average
	P30         *float64 `json:"p30,omitempty"`          // 30th percentile baseline
	P70         *float64 `json:"p70,omitempty"`          // 70th percentile baseline
}

// Metadata is the opaque key/value bag attached to an observation.
type Metadata map[string]any

// Float returns a numeric metadata entry.
func (m Metadata) Float(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Observation is a single metric reading supplied by the caller.
type Observation struct {
	MetricID string
	Value    *float64
	Metadata Metadata
	Context  *Context
}

// Interpretation is the engine output for one metric.
type Interpretation struct {
	Headline   string     `json:"headline"`
	Summary    string     `json:"summary"`
	Why        string     `json:"why"`
	Watch      string     `json:"watch,omitempty"`
	Risk       Risk       `json:"risk"`
	Confidence Confidence `json:"confidence"`
	DataNote   string     `json:"data_note,omitempty"`
	Icon       Icon       `json:"icon"`
	Color      Color      `json:"color"`
}

// WatchItem is an actionable trigger derived from an interpretation.
type WatchItem struct {
	MetricID    string   `json:"metric_id"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// Float returns a pointer to v, for building observations and contexts.
func Float(v float64) *float64 {
	return &v
}

// IsInvalidValue reports whether a value cannot be interpreted.
func IsInvalidValue(value *float64) bool {
	return value == nil || math.IsNaN(*value) || math.IsInf(*value, 0)
}
