package metrics

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/radar/internal/insights"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  *float64
	}{
		{"float", 1.5, insights.Float(1.5)},
		{"int", 3, insights.Float(3)},
		{"int64", int64(-7), insights.Float(-7)},
		{"numeric string", "0.85", insights.Float(0.85)},
		{"padded string", " 12 ", insights.Float(12)},
		{"json number", json.Number("2.25"), insights.Float(2.25)},
		{"pointer", insights.Float(4), insights.Float(4)},
		{"nil", nil, nil},
		{"nil pointer", (*float64)(nil), nil},
		{"NaN", math.NaN(), nil},
		{"Inf", math.Inf(-1), nil},
		{"NaN string", "NaN", nil},
		{"text", "n/a", nil},
		{"bool", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeValue(tt.value)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-12)
		})
	}
}

func TestComputeTrend(t *testing.T) {
	assert.Equal(t, TrendUp, ComputeTrend(insights.Float(10), insights.Float(9), DefaultTrendEpsilon))
	assert.Equal(t, TrendDown, ComputeTrend(insights.Float(9), insights.Float(10), DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, ComputeTrend(insights.Float(10.0005), insights.Float(10), DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, ComputeTrend(insights.Float(10), nil, DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, ComputeTrend(nil, insights.Float(10), DefaultTrendEpsilon))
	assert.Equal(t, TrendUp, ComputeTrend(insights.Float(10.0005), insights.Float(10), 0.0001))
}

func testSeries() []Point {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []Point{
		{TS: base, Value: 100.0},
		{TS: base.AddDate(0, 0, 1), Value: "110"},
		{TS: base.AddDate(0, 0, 2), Value: "error"},
		{TS: base.AddDate(0, 0, 3), Value: nil},
	}
}

func TestLastValid(t *testing.T) {
	got, ok := LastValid(testSeries())
	require.True(t, ok)
	assert.Equal(t, 110.0, got.Value)
	assert.Equal(t, 2, got.TS.Day())

	_, ok = LastValid([]Point{{Value: "x"}})
	assert.False(t, ok)

	_, ok = LastValid(nil)
	assert.False(t, ok)
}

func TestLastTwo(t *testing.T) {
	latest, previous := LastTwo(testSeries())
	require.NotNil(t, latest)
	require.NotNil(t, previous)
	assert.Equal(t, 110.0, latest.Value)
	assert.Equal(t, 100.0, previous.Value)

	latest, previous = LastTwo([]Point{{Value: 5}})
	require.NotNil(t, latest)
	assert.Nil(t, previous)

	latest, previous = LastTwo(nil)
	assert.Nil(t, latest)
	assert.Nil(t, previous)
}

func TestPercentageChange(t *testing.T) {
	assert.InDelta(t, 10.0, PercentageChange(110, 100), 1e-9)
	assert.InDelta(t, -50.0, PercentageChange(50, 100), 1e-9)
	assert.Equal(t, 0.0, PercentageChange(50, 0))
}

func TestMetricTrend(t *testing.T) {
	latest := &LatestItem{MetricID: insights.MetricFXTrend14v30, Value: "1.2"}
	reference := &LatestItem{MetricID: insights.MetricFXTrend14v30, Value: 1.0}

	assert.Equal(t, TrendUp, MetricTrend(latest, reference, DefaultTrendEpsilon))
	assert.Equal(t, TrendDown, MetricTrend(reference, latest, DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, MetricTrend(latest, nil, DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, MetricTrend(latest, &LatestItem{Value: "bad"}, DefaultTrendEpsilon))
}
