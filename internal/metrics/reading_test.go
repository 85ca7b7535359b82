package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/radar/internal/insights"
)

func TestToReading_WithoutPoints(t *testing.T) {
	in := ObservationInput{
		MetricID:  "custom.share",
		Value:     2.0,
		Reference: "1.5",
		Unit:      "percent",
	}

	r := in.ToReading(time.Now(), DefaultCalendar())

	assert.Equal(t, "percent", r.Unit)
	require.NotNil(t, r.Value)
	require.NotNil(t, r.Reference)
	assert.Equal(t, 1.5, *r.Reference)
	assert.Nil(t, r.Context)
	assert.True(t, r.HasTrend())
	assert.Equal(t, TrendUp, r.Trend(DefaultTrendEpsilon))
	assert.Equal(t, TrendFlat, r.Trend(1))
}

func TestToReading_NoReference(t *testing.T) {
	r := (&ObservationInput{MetricID: "custom.share", Value: 2.0}).ToReading(time.Now(), DefaultCalendar())

	assert.False(t, r.HasTrend())
	assert.Equal(t, TrendFlat, r.Trend(DefaultTrendEpsilon))
}

func TestToReading_ValueFromSeries(t *testing.T) {
	points := januarySeries(1)
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	r := (&ObservationInput{MetricID: insights.MetricReservesDelta7d, Points: points}).ToReading(now, DefaultCalendar())

	require.NotNil(t, r.Value)
	require.NotNil(t, r.Reference)
	assert.Equal(t, points[len(points)-1].Value, *r.Value)
	assert.Equal(t, points[len(points)-2].Value, *r.Reference)
	assert.Equal(t, TrendUp, r.Trend(DefaultTrendEpsilon))

	// The series stopped a month ago, so the derived context is stale.
	require.NotNil(t, r.Context)
	require.NotNil(t, r.Context.FreshnessH)
	assert.Greater(t, *r.Context.FreshnessH, 72.0)

	got := insights.GetHumanCopy(r.MetricID, r.Value, r.Metadata, r.Context)
	assert.Equal(t, insights.ConfidenceBaja, got.Confidence)
	assert.Contains(t, got.DataNote, "Dato con retraso")
}

func TestToReading_ExplicitValueUsesNewestPointAsReference(t *testing.T) {
	points := januarySeries(1)
	now := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	r := (&ObservationInput{MetricID: insights.MetricReservesDelta7d, Value: 0.0, Points: points}).ToReading(now, DefaultCalendar())

	require.NotNil(t, r.Value)
	assert.Equal(t, 0.0, *r.Value)
	require.NotNil(t, r.Reference)
	assert.Equal(t, points[len(points)-1].Value, *r.Reference)
	assert.Equal(t, TrendDown, r.Trend(DefaultTrendEpsilon))
}

func TestToReading_KeepsExplicitContext(t *testing.T) {
	in := ObservationInput{
		MetricID: insights.MetricReservesDelta7d,
		Context:  &ContextInput{FreshnessH: insights.Float(2), Coverage30d: insights.Float(100)},
		Points:   januarySeries(1),
	}

	r := in.ToReading(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), DefaultCalendar())

	require.NotNil(t, r.Context)
	assert.Equal(t, 2.0, *r.Context.FreshnessH)
	assert.Equal(t, insights.ConfidenceAlta, insights.CalcConfidence(r.Context))
}

const jsonSeriesObservations = `{"observations": [
  {"metric_id": "delta.reserves_7d.pct", "points": [
    {"ts": "2024-01-29T18:00:00Z", "value": "1.0"},
    {"ts": "2024-01-30T18:00:00Z", "value": 2.5}
  ]}
]}`

const tomlSeriesObservations = `
[[observations]]
metric_id = "delta.base_7d.pct"
reference = 4.0

[[observations.points]]
ts = 2024-01-29T18:00:00Z
value = 1.0

[[observations.points]]
ts = 2024-01-30T18:00:00Z
value = 3.0
`

func TestDecodeObservationSet_Points(t *testing.T) {
	now := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	set, err := DecodeObservationSet([]byte(jsonSeriesObservations), ".json")
	require.NoError(t, err)
	readings := set.ToReadings(now, DefaultCalendar())
	require.Len(t, readings, 1)
	require.NotNil(t, readings[0].Value)
	assert.Equal(t, 2.5, *readings[0].Value)
	require.NotNil(t, readings[0].Reference)
	assert.Equal(t, 1.0, *readings[0].Reference)
	require.NotNil(t, readings[0].Context)
	assert.InDelta(t, 18.0, *readings[0].Context.FreshnessH, 1e-9)

	set, err = DecodeObservationSet([]byte(tomlSeriesObservations), ".toml")
	require.NoError(t, err)
	readings = set.ToReadings(now, DefaultCalendar())
	require.Len(t, readings, 1)
	require.NotNil(t, readings[0].Value)
	assert.Equal(t, 3.0, *readings[0].Value)
	require.NotNil(t, readings[0].Reference)
	assert.Equal(t, 4.0, *readings[0].Reference)
	assert.Equal(t, TrendDown, readings[0].Trend(DefaultTrendEpsilon))
}

func TestObservations(t *testing.T) {
	readings := []Reading{
		{Observation: insights.Observation{MetricID: "a"}},
		{Observation: insights.Observation{MetricID: "b"}, Unit: "percent"},
	}

	obs := Observations(readings)
	require.Len(t, obs, 2)
	assert.Equal(t, "a", obs[0].MetricID)
	assert.Equal(t, "b", obs[1].MetricID)
}
