package metrics

import (
	"time"

	"github.com/ternarybob/radar/internal/insights"
)

// Reading is an engine observation plus the display inputs carried by the
// wire form.
type Reading struct {
	insights.Observation
	Unit      string
	Reference *float64
}

// Trend compares the value with the reference. Without both it is flat.
func (r Reading) Trend(eps float64) Trend {
	return ComputeTrend(r.Value, r.Reference, eps)
}

// HasTrend reports whether both sides of the trend are known.
func (r Reading) HasTrend() bool {
	return r.Value != nil && r.Reference != nil
}

// ToReading converts the wire form, filling gaps from Points. Without a value
// the newest valid point is the value and the one before it the reference;
// with a value the newest valid point is the reference. Without a context
// one is derived from the series as of now.
func (in *ObservationInput) ToReading(now time.Time, cal Calendar) Reading {
	r := Reading{
		Observation: in.ToObservation(),
		Unit:        in.Unit,
		Reference:   NormalizeValue(in.Reference),
	}

	if len(in.Points) == 0 {
		return r
	}

	latest, previous := LastTwo(in.Points)
	if r.Value == nil && latest != nil {
		r.Value = insights.Float(latest.Value)
		latest = previous
	}
	if r.Reference == nil && latest != nil {
		r.Reference = insights.Float(latest.Value)
	}
	if r.Context == nil {
		r.Context = ContextFromPoints(in.Points, now, cal)
	}

	return r
}

// ToReadings converts every entry, preserving order.
func (s *ObservationSet) ToReadings(now time.Time, cal Calendar) []Reading {
	out := make([]Reading, len(s.Observations))
	for i := range s.Observations {
		out[i] = s.Observations[i].ToReading(now, cal)
	}
	return out
}

// Observations returns the engine observations of readings.
func Observations(readings []Reading) []insights.Observation {
	out := make([]insights.Observation, len(readings))
	for i := range readings {
		out[i] = readings[i].Observation
	}
	return out
}
