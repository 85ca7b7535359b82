package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

// createTestEngine creates an engine with a fresh registry for testing
func createTestEngine() *Engine {
	return NewEngine(arbor.NewLogger())
}

func TestGetHumanCopy(t *testing.T) {
	DefaultRegistry().Clear()

	t.Run("null reserves ignores context", func(t *testing.T) {
		got := GetHumanCopy(MetricReservesDelta7d, nil, nil, &Context{FreshnessH: Float(1), Coverage30d: Float(100)})
		assert.Equal(t, RiskNeutral, got.Risk)
		assert.Equal(t, ConfidenceBaja, got.Confidence)
	})

	t.Run("strong ratio", func(t *testing.T) {
		got := GetHumanCopy(MetricReservesToBase, Float(0.85), nil, nil)
		assert.Equal(t, RiskPositive, got.Risk)
	})

	t.Run("weak ratio has watch", func(t *testing.T) {
		got := GetHumanCopy(MetricReservesToBase, Float(0.5), nil, nil)
		assert.Equal(t, RiskNegative, got.Risk)
		assert.NotEmpty(t, got.Watch)
	})

	t.Run("unknown metric", func(t *testing.T) {
		got := GetHumanCopy("foo.bar.baz", Float(12), Metadata{"units": "x"}, nil)
		assert.Equal(t, RiskNeutral, got.Risk)
		assert.Equal(t, headlineMonitored, got.Headline)
	})

	t.Run("repeat calls are identical", func(t *testing.T) {
		ctx := &Context{FreshnessH: Float(50), Coverage30d: Float(70)}
		first := GetHumanCopy(MetricBaseDelta30d, Float(3.3), nil, ctx)
		second := GetHumanCopy(MetricBaseDelta30d, Float(3.3), nil, ctx)
		assert.Equal(t, first, second)
	})
}

func TestEngine_DailyReading(t *testing.T) {
	engine := createTestEngine()

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, engine.DailyReading(nil))
		assert.Nil(t, engine.DailyReading([]Observation{}))
	})

	t.Run("most severe wins", func(t *testing.T) {
		metrics := []Observation{
			{MetricID: "foo.bar.baz", Value: Float(1)},          // neutral
			{MetricID: MetricReservesDelta7d, Value: Float(-3)}, // negative
			{MetricID: MetricBaseDelta7d, Value: Float(1)},      // warning
			{MetricID: MetricReservesToBase, Value: Float(0.9)}, // positive
		}

		got := engine.DailyReading(metrics)
		require.NotNil(t, got)
		assert.Equal(t, RiskNegative, got.Risk)
		assert.Equal(t, headlinePressure, got.Headline)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		metrics := []Observation{
			{MetricID: MetricBaseDelta7d, Value: Float(1)},      // warning
			{MetricID: MetricReservesToBase, Value: Float(0.3)}, // negative, first
			{MetricID: MetricReservesDelta7d, Value: Float(-5)}, // negative, second
		}

		got := engine.DailyReading(metrics)
		require.NotNil(t, got)
		assert.Equal(t, headlineFragile, got.Headline)
	})

	t.Run("all neutral returns first", func(t *testing.T) {
		metrics := []Observation{
			{MetricID: MetricFXTrend14v30, Value: Float(0)},
			{MetricID: "foo.bar.baz", Value: Float(1)},
		}

		got := engine.DailyReading(metrics)
		require.NotNil(t, got)
		assert.Equal(t, headlineNoTrend, got.Headline)
	})

	t.Run("missing values are neutral", func(t *testing.T) {
		metrics := []Observation{
			{MetricID: MetricReservesDelta7d, Value: nil},
			{MetricID: MetricFXTrend14v30, Value: Float(-0.04)},
		}

		got := engine.DailyReading(metrics)
		require.NotNil(t, got)
		assert.Equal(t, RiskPositive, got.Risk)
	})
}

func TestEngine_GenerateWatchItems(t *testing.T) {
	engine := createTestEngine()

	metrics := []Observation{
		{MetricID: MetricReservesToBase, Value: Float(0.9)}, // positive, no watch
		{MetricID: MetricBaseDelta7d, Value: Float(1.2)},    // warning, watch
		{MetricID: MetricReservesDelta7d, Value: Float(-1)}, // warning, watch
		{MetricID: MetricFXVolatility7d, Value: Float(3.1)}, // negative, watch
		{MetricID: "foo.bar.baz", Value: Float(99)},         // neutral, no watch
		{MetricID: MetricReservesToBase, Value: nil},        // no data, no watch
	}

	items := engine.GenerateWatchItems(metrics)
	require.Len(t, items, 3)

	assert.Equal(t, WatchItem{MetricID: MetricFXVolatility7d, Description: WatchVolatilityHigh, Priority: PriorityHigh}, items[0])
	assert.Equal(t, WatchItem{MetricID: MetricBaseDelta7d, Description: WatchBaseUp7d, Priority: PriorityMedium}, items[1])
	assert.Equal(t, WatchItem{MetricID: MetricReservesDelta7d, Description: WatchReservesDown, Priority: PriorityMedium}, items[2])

	for _, item := range items {
		assert.NotEmpty(t, item.Description)
	}
}

func TestEngine_GenerateWatchItems_Empty(t *testing.T) {
	items := createTestEngine().GenerateWatchItems(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items = GenerateWatchItems([]Observation{{MetricID: MetricReservesDelta7d, Value: Float(3)}})
	assert.Empty(t, items)
}

func TestEngine_SharedRegistry(t *testing.T) {
	registry := NewRegistry(nil)
	a := NewEngineWithRegistry(registry, nil)
	b := NewEngineWithRegistry(registry, nil)

	a.GetHumanCopy(MetricFXTrend14v30, Float(0.05), nil, nil)
	b.GetHumanCopy(MetricFXTrend14v30, Float(-0.05), nil, nil)

	assert.Same(t, registry, a.Registry())
	assert.Equal(t, 1, registry.Len())
}

func TestGetDailyReading_PackageLevel(t *testing.T) {
	got := GetDailyReading([]Observation{
		{MetricID: MetricBaseDelta30d, Value: Float(-6)},
		{MetricID: MetricBaseDelta30d, Value: Float(6)},
	})
	require.NotNil(t, got)
	assert.Equal(t, headlineExpansion, got.Headline)
	assert.Equal(t, IconUp, got.Icon)
}
