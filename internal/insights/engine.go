package insights

import (
	"sort"

	"github.com/ternarybob/arbor"
)

// Engine interprets observations and aggregates them into a daily reading
// and a watch list. It is safe for concurrent use.
type Engine struct {
	registry *Registry
	logger   arbor.ILogger
}

// NewEngine creates an engine with its own interpreter registry.
func NewEngine(logger arbor.ILogger) *Engine {
	return &Engine{
		registry: NewRegistry(logger),
		logger:   logger,
	}
}

// NewEngineWithRegistry creates an engine sharing an existing registry.
func NewEngineWithRegistry(registry *Registry, logger arbor.ILogger) *Engine {
	return &Engine{
		registry: registry,
		logger:   logger,
	}
}

// Registry exposes the engine's interpreter cache.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// GetHumanCopy interprets a single metric value.
func (e *Engine) GetHumanCopy(metricID string, value *float64, meta Metadata, ctx *Context) Interpretation {
	return e.registry.Get(metricID).Interpret(value, ctx, meta)
}

// Interpret is GetHumanCopy for an Observation.
func (e *Engine) Interpret(obs Observation) Interpretation {
	return e.GetHumanCopy(obs.MetricID, obs.Value, obs.Metadata, obs.Context)
}

// DailyReading returns the most severe interpretation across metrics, or nil
// for empty input. Ties keep input order.
func (e *Engine) DailyReading(metrics []Observation) *Interpretation {
	if len(metrics) == 0 {
		return nil
	}

	type ranked struct {
		metricID string
		result   Interpretation
	}

	results := make([]ranked, len(metrics))
	for i, m := range metrics {
		results[i] = ranked{metricID: m.MetricID, result: e.Interpret(m)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return severityRank(results[i].result.Risk) < severityRank(results[j].result.Risk)
	})

	top := results[0]
	if e.logger != nil {
		e.logger.Debug().
			Str("metric_id", top.metricID).
			Str("risk", string(top.result.Risk)).
			Int("metrics", len(metrics)).
			Msg("Daily reading selected")
	}

	return &top.result
}

// GenerateWatchItems returns one item per interpretation that carries a
// watch trigger, high priority first. Ties keep input order.
func (e *Engine) GenerateWatchItems(metrics []Observation) []WatchItem {
	items := make([]WatchItem, 0)

	for _, m := range metrics {
		result := e.Interpret(m)
		if result.Watch == "" {
			continue
		}
		items = append(items, WatchItem{
			MetricID:    m.MetricID,
			Description: result.Watch,
			Priority:    PriorityFromRisk(result.Risk),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i].Priority) < priorityRank(items[j].Priority)
	})

	if e.logger != nil {
		e.logger.Debug().Int("metrics", len(metrics)).Int("watch_items", len(items)).Msg("Watch items generated")
	}

	return items
}

var defaultEngine = NewEngine(nil)

// DefaultRegistry returns the registry behind the package-level functions.
func DefaultRegistry() *Registry {
	return defaultEngine.registry
}

// GetHumanCopy interprets a metric value with the package-level engine.
func GetHumanCopy(metricID string, value *float64, meta Metadata, ctx *Context) Interpretation {
	return defaultEngine.GetHumanCopy(metricID, value, meta, ctx)
}

// GetDailyReading returns the most severe interpretation using the package-level engine.
func GetDailyReading(metrics []Observation) *Interpretation {
	return defaultEngine.DailyReading(metrics)
}

// GenerateWatchItems builds the watch list using the package-level engine.
func GenerateWatchItems(metrics []Observation) []WatchItem {
	return defaultEngine.GenerateWatchItems(metrics)
}
