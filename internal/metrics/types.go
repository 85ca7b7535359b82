// Package metrics holds the wire schema of the metrics API and the helpers
// that turn raw series into engine observations: value normalization, trend
// selectors, business-day arithmetic and data-quality derivation.
package metrics

import (
	"time"

	"github.com/ternarybob/radar/internal/insights"
)

// Category groups metric definitions in the catalog.
type Category string

const (
	CategoryDeltas     Category = "deltas"
	CategoryMonetary   Category = "monetary"
	CategoryRatios     Category = "ratios"
	CategoryFX         Category = "fx"
	CategoryDataHealth Category = "data_health"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryDeltas, CategoryMonetary, CategoryRatios, CategoryFX, CategoryDataHealth}

// Definition describes a metric published by the metrics API.
type Definition struct {
	ID           string   `json:"id" toml:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" toml:"name" yaml:"name" validate:"required"`
	Category     Category `json:"category" toml:"category" yaml:"category" validate:"required,oneof=deltas monetary ratios fx data_health"`
	Description  string   `json:"description,omitempty" toml:"description" yaml:"description"`
	Unit         string   `json:"unit,omitempty" toml:"unit" yaml:"unit"`
	Formula      string   `json:"formula,omitempty" toml:"formula" yaml:"formula"`
	Dependencies []string `json:"dependencies,omitempty" toml:"dependencies" yaml:"dependencies"`
	Tags         []string `json:"tags,omitempty" toml:"tags" yaml:"tags"`
}

// Point is one historical sample. Value is a number or a numeric string.
type Point struct {
	TS       time.Time         `json:"ts" toml:"ts" yaml:"ts"`
	Value    any               `json:"value" toml:"value" yaml:"value"`
	Metadata insights.Metadata `json:"metadata,omitempty" toml:"metadata" yaml:"metadata"`
}

// LatestItem is the most recent sample of a metric.
type LatestItem struct {
	MetricID string            `json:"metric_id" toml:"metric_id" yaml:"metric_id"`
	TS       time.Time         `json:"ts" toml:"ts" yaml:"ts"`
	Value    any               `json:"value" toml:"value" yaml:"value"`
	Metadata insights.Metadata `json:"metadata,omitempty" toml:"metadata" yaml:"metadata"`
}

// Trend is the direction of change between two samples.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// ContextInput is the wire form of insights.Context.
type ContextInput struct {
	FreshnessH  *float64 `json:"freshness_h,omitempty" toml:"freshness_h" yaml:"freshness_h" validate:"omitempty,gte=0"`
	Coverage30d *float64 `json:"coverage_30d,omitempty" toml:"coverage_30d" yaml:"coverage_30d" validate:"omitempty,gte=0,lte=100"`
	MA30        *float64 `json:"ma30,omitempty" toml:"ma30" yaml:"ma30"`
	P30         *float64 `json:"p30,omitempty" toml:"p30" yaml:"p30" validate:"omitempty,gte=0"`
	P70         *float64 `json:"p70,omitempty" toml:"p70" yaml:"p70" validate:"omitempty,gte=0"`
}

// ObservationInput is the wire form of one metric reading as received from
// the metrics API or an input file. Reference is the previous value used for
// the trend. Points is an optional chronological series.
type ObservationInput struct {
	MetricID  string         `json:"metric_id" toml:"metric_id" yaml:"metric_id" validate:"required"`
	Value     any            `json:"value" toml:"value" yaml:"value"`
	Reference any            `json:"reference,omitempty" toml:"reference" yaml:"reference"`
	Unit      string         `json:"unit,omitempty" toml:"unit" yaml:"unit"`
	Metadata  map[string]any `json:"metadata,omitempty" toml:"metadata" yaml:"metadata"`
	Context   *ContextInput  `json:"context,omitempty" toml:"context" yaml:"context" validate:"omitempty"`
	Points    []Point        `json:"points,omitempty" toml:"points" yaml:"points"`
}

// ObservationSet is the document read by the CLI.
type ObservationSet struct {
	Observations []ObservationInput `json:"observations" toml:"observations" yaml:"observations" validate:"dive"`
}
