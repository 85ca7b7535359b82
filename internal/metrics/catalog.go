package metrics

import (
	"github.com/ternarybob/radar/internal/format"
	"github.com/ternarybob/radar/internal/insights"
)

// MetricDataFreshnessFX tracks the age of the official FX series.
const MetricDataFreshnessFX = "data.freshness.bcra.cambiarias.usd"

// DefaultDashboardMetrics is the dashboard's metric set, in display order.
var DefaultDashboardMetrics = []string{
	insights.MetricReservesDelta7d,
	insights.MetricBaseDelta7d,
	insights.MetricBaseDelta30d,
	insights.MetricReservesToBase,
	insights.MetricFXVolatility7d,
	insights.MetricFXTrend14v30,
	MetricDataFreshnessFX,
}

var defaultDefinitions = []Definition{
	{
		ID:          insights.MetricReservesDelta7d,
		Name:        "Reservas: variación 7d",
		Category:    CategoryDeltas,
		Description: "Cambio porcentual de las reservas internacionales en 7 días.",
		Unit:        format.UnitPercent,
		Formula:     "(reservas_t / reservas_t-7 - 1) * 100",
		Tags:        []string{"reservas", "bcra"},
	},
	{
		ID:          insights.MetricBaseDelta7d,
		Name:        "Base monetaria: variación 7d",
		Category:    CategoryDeltas,
		Description: "Cambio porcentual de la base monetaria en 7 días.",
		Unit:        format.UnitPercent,
		Formula:     "(base_t / base_t-7 - 1) * 100",
		Tags:        []string{"base", "bcra"},
	},
	{
		ID:          insights.MetricBaseDelta30d,
		Name:        "Base monetaria: variación 30d",
		Category:    CategoryDeltas,
		Description: "Cambio porcentual de la base monetaria en 30 días.",
		Unit:        format.UnitPercent,
		Formula:     "(base_t / base_t-30 - 1) * 100",
		Tags:        []string{"base", "bcra"},
	},
	{
		ID:           insights.MetricReservesToBase,
		Name:         "Reservas / Base",
		Category:     CategoryRatios,
		Description:  "Cobertura de la base monetaria con reservas.",
		Unit:         format.UnitRatio,
		Formula:      "reservas_usd * tc / base",
		Dependencies: []string{"bcra.reservas", "bcra.base_monetaria"},
		Tags:         []string{"cobertura"},
	},
	{
		ID:          insights.MetricFXVolatility7d,
		Name:        "Volatilidad USD 7d",
		Category:    CategoryFX,
		Description: "Desvío de las variaciones diarias del tipo de cambio en 7 días.",
		Unit:        format.UnitVolatility,
		Tags:        []string{"fx", "usd"},
	},
	{
		ID:          insights.MetricFXTrend14v30,
		Name:        "Tendencia USD 14v30",
		Category:    CategoryFX,
		Description: "Media móvil de 14 días frente a la de 30 días, como fracción.",
		Formula:     "ma14 / ma30 - 1",
		Tags:        []string{"fx", "usd"},
	},
	{
		ID:          MetricDataFreshnessFX,
		Name:        "Frescura cambiarias USD",
		Category:    CategoryDataHealth,
		Description: "Horas desde la última publicación de cotizaciones oficiales.",
		Unit:        "hours",
		Tags:        []string{"calidad"},
	},
}

// Catalog indexes metric definitions by id.
type Catalog struct {
	byID  map[string]Definition
	order []string
}

// NewCatalog builds a catalog. Later definitions replace earlier ones with
// the same id.
func NewCatalog(defs []Definition) *Catalog {
	c := &Catalog{byID: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, exists := c.byID[d.ID]; !exists {
			c.order = append(c.order, d.ID)
		}
		c.byID[d.ID] = d
	}
	return c
}

// DefaultCatalog describes the dashboard metrics.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultDefinitions)
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// UnitFor returns the display unit for id, or "" when unknown.
func (c *Catalog) UnitFor(id string) string {
	return c.byID[id].Unit
}

// NameFor returns the display name for id, falling back to the id itself.
func (c *Catalog) NameFor(id string) string {
	if d, ok := c.byID[id]; ok && d.Name != "" {
		return d.Name
	}
	return id
}

// Definitions returns every definition in insertion order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ByCategory returns the definitions in category, in insertion order.
func (c *Catalog) ByCategory(category Category) []Definition {
	var out []Definition
	for _, id := range c.order {
		if d := c.byID[id]; d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
