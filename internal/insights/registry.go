package insights

import (
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
)

// Metric id prefixes recognised by the registry.
const (
	MetricReservesDelta7d = "delta.reserves_7d.pct"
	MetricBaseDelta7d     = "delta.base_7d.pct"
	MetricBaseDelta30d    = "delta.base_30d.pct"
	MetricReservesToBase  = "ratio.reserves_to_base"
	MetricFXVolatility7d  = "fx.vol_7d.usd"
	MetricFXTrend14v30    = "fx.trend_14v30.usd"
)

// familyPrefixes is checked in order; the first matching prefix wins.
var familyPrefixes = []struct {
	prefix string
	family Family
}{
	{MetricReservesDelta7d, FamilyReserves},
	{MetricBaseDelta7d, FamilyBase7d},
	{MetricBaseDelta30d, FamilyBase30d},
	{MetricReservesToBase, FamilyRatio},
	{MetricFXVolatility7d, FamilyVolatility},
	{MetricFXTrend14v30, FamilyTrend},
}

// FamilyFor resolves a metric id to its family. Unmatched ids map to FamilyDefault.
func FamilyFor(metricID string) Family {
	for _, fp := range familyPrefixes {
		if strings.HasPrefix(metricID, fp.prefix) {
			return fp.family
		}
	}
	return FamilyDefault
}

// Registry memoizes one Interpreter per metric id. Entries are never
// mutated once stored; only Clear removes them.
type Registry struct {
	mu           sync.RWMutex
	interpreters map[string]*Interpreter
	logger       arbor.ILogger
}

// NewRegistry creates an empty registry. logger may be nil.
func NewRegistry(logger arbor.ILogger) *Registry {
	return &Registry{
		interpreters: make(map[string]*Interpreter),
		logger:       logger,
	}
}

// Get returns the cached interpreter for metricID, creating it on first use.
func (r *Registry) Get(metricID string) *Interpreter {
	r.mu.RLock()
	interp, ok := r.interpreters[metricID]
	r.mu.RUnlock()
	if ok {
		return interp
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if interp, ok := r.interpreters[metricID]; ok {
		return interp
	}

	family := FamilyFor(metricID)
	interp = NewInterpreter(family)
	r.interpreters[metricID] = interp

	if r.logger != nil {
		if family == FamilyDefault {
			r.logger.Debug().Str("metric_id", metricID).Msg("Unknown metric id, using default interpreter")
		} else {
			r.logger.Debug().Str("metric_id", metricID).Str("family", string(family)).Msg("Interpreter created")
		}
	}

	return interp
}

// Len returns the number of cached interpreters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.interpreters)
}

// Clear drops every cached interpreter.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interpreters = make(map[string]*Interpreter)
}
