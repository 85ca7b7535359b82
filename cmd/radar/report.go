package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ternarybob/radar/internal/common"
	"github.com/ternarybob/radar/internal/format"
	"github.com/ternarybob/radar/internal/insights"
	"github.com/ternarybob/radar/internal/metrics"
)

// MetricLine is one interpreted metric in a report
type MetricLine struct {
	MetricID       string                  `json:"metric_id"`
	Name           string                  `json:"name"`
	Value          string                  `json:"value"`
	Raw            *float64                `json:"raw,omitempty"`
	Reference      *float64                `json:"reference,omitempty"`
	Trend          metrics.Trend           `json:"trend,omitempty"` // Set only when a reference is known
	Interpretation insights.Interpretation `json:"interpretation"`
}

// Report is the output of one evaluation run
type Report struct {
	ID           string                   `json:"id"`
	GeneratedAt  time.Time                `json:"generated_at"`
	DailyReading *insights.Interpretation `json:"daily_reading,omitempty"`
	Metrics      []MetricLine             `json:"metrics"`
	Watch        []insights.WatchItem     `json:"watch"`
	Missing      []string                 `json:"missing,omitempty"` // Dashboard metrics with no observation
}

// Reporter turns observations into reports
type Reporter struct {
	engine       *insights.Engine
	formatter    *format.Formatter
	catalog      *metrics.Catalog
	dashboard    []string
	trendEpsilon float64
}

// NewReporter creates a reporter for the configured dashboard. A non-positive
// trendEpsilon falls back to metrics.DefaultTrendEpsilon.
func NewReporter(engine *insights.Engine, formatter *format.Formatter, catalog *metrics.Catalog, dashboard []string, trendEpsilon float64) *Reporter {
	if trendEpsilon <= 0 {
		trendEpsilon = metrics.DefaultTrendEpsilon
	}
	return &Reporter{
		engine:       engine,
		formatter:    formatter,
		catalog:      catalog,
		dashboard:    dashboard,
		trendEpsilon: trendEpsilon,
	}
}

// Build evaluates readings. Dashboard metrics come first in dashboard
// order, followed by any other readings in input order.
func (r *Reporter) Build(readings []metrics.Reading, now time.Time) *Report {
	ordered := r.order(readings)
	observations := metrics.Observations(ordered)

	report := &Report{
		ID:           common.NewReportID(),
		GeneratedAt:  now,
		DailyReading: r.engine.DailyReading(observations),
		Metrics:      make([]MetricLine, 0, len(ordered)),
		Watch:        r.engine.GenerateWatchItems(observations),
	}

	for _, reading := range ordered {
		line := MetricLine{
			MetricID:       reading.MetricID,
			Name:           r.catalog.NameFor(reading.MetricID),
			Value:          r.formatter.FormatValue(reading.Value, r.unitFor(reading)),
			Raw:            reading.Value,
			Reference:      reading.Reference,
			Interpretation: r.engine.Interpret(reading.Observation),
		}
		if reading.HasTrend() {
			line.Trend = reading.Trend(r.trendEpsilon)
		}
		report.Metrics = append(report.Metrics, line)
	}

	present := make(map[string]bool, len(readings))
	for _, reading := range readings {
		present[reading.MetricID] = true
	}
	for _, id := range r.dashboard {
		if !present[id] {
			report.Missing = append(report.Missing, id)
		}
	}

	return report
}

// unitFor prefers the unit declared on the reading over the catalog's
func (r *Reporter) unitFor(reading metrics.Reading) string {
	if reading.Unit != "" {
		return reading.Unit
	}
	return r.catalog.UnitFor(reading.MetricID)
}

func (r *Reporter) order(readings []metrics.Reading) []metrics.Reading {
	onDashboard := make(map[string]bool, len(r.dashboard))
	ordered := make([]metrics.Reading, 0, len(readings))

	for _, id := range r.dashboard {
		if onDashboard[id] {
			continue
		}
		onDashboard[id] = true
		for _, reading := range readings {
			if reading.MetricID == id {
				ordered = append(ordered, reading)
			}
		}
	}
	for _, reading := range readings {
		if !onDashboard[reading.MetricID] {
			ordered = append(ordered, reading)
		}
	}
	return ordered
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText writes the report in a terminal-friendly layout
func WriteText(w io.Writer, report *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Informe %s (%s)\n\n", report.ID, report.GeneratedAt.Format(time.RFC3339))

	if report.DailyReading != nil {
		fmt.Fprintf(&b, "Lectura del día: %s\n", report.DailyReading.Headline)
		fmt.Fprintf(&b, "  %s\n", report.DailyReading.Summary)
		fmt.Fprintf(&b, "  Riesgo: %s | Confianza: %s\n\n", report.DailyReading.Risk, report.DailyReading.Confidence)
	} else {
		b.WriteString("Lectura del día: sin datos\n\n")
	}

	b.WriteString("Métricas:\n")
	for _, line := range report.Metrics {
		in := line.Interpretation
		fmt.Fprintf(&b, "  [%s] %s: %s (%s)\n", iconGlyph(in.Icon), line.Name, line.Value, in.Headline)
		if line.Trend != "" {
			fmt.Fprintf(&b, "      Tendencia: %s\n", trendLabel(line.Trend))
		}
		fmt.Fprintf(&b, "      %s\n", in.Summary)
		fmt.Fprintf(&b, "      Por qué: %s\n", in.Why)
		if in.DataNote != "" {
			fmt.Fprintf(&b, "      Nota: %s\n", in.DataNote)
		}
	}

	if len(report.Watch) > 0 {
		b.WriteString("\nQué mirar:\n")
		for _, item := range report.Watch {
			fmt.Fprintf(&b, "  (%s) %s: %s\n", item.Priority, item.MetricID, item.Description)
		}
	}

	if len(report.Missing) > 0 {
		fmt.Fprintf(&b, "\nSin datos: %s\n", strings.Join(report.Missing, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func trendLabel(trend metrics.Trend) string {
	switch trend {
	case metrics.TrendUp:
		return "al alza"
	case metrics.TrendDown:
		return "a la baja"
	default:
		return "estable"
	}
}

func iconGlyph(icon insights.Icon) string {
	switch icon {
	case insights.IconUp:
		return "↑"
	case insights.IconDown:
		return "↓"
	case insights.IconFlat:
		return "→"
	default:
		return "·"
	}
}
