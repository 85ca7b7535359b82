package metrics

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ternarybob/radar/internal/insights"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(percentileOrder, ContextInput{})
	return v
}

// percentileOrder rejects a p30 above p70 when both are present.
func percentileOrder(sl validator.StructLevel) {
	c := sl.Current().Interface().(ContextInput)
	if c.P30 != nil && c.P70 != nil && *c.P30 > *c.P70 {
		sl.ReportError(c.P70, "P70", "p70", "gtefield", "P30")
	}
}

// Validate checks the observation against its struct tags.
func (in *ObservationInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid observation %q: %w", in.MetricID, err)
	}
	return nil
}

// ToObservation converts the wire form into an engine observation. The value
// is normalized; unparseable values become nil and read as missing data.
func (in *ObservationInput) ToObservation() insights.Observation {
	obs := insights.Observation{
		MetricID: in.MetricID,
		Value:    NormalizeValue(in.Value),
		Metadata: insights.Metadata(in.Metadata),
	}
	if in.Context != nil {
		obs.Context = in.Context.ToContext()
	}
	return obs
}

// ToContext copies the wire context into an engine context.
func (c *ContextInput) ToContext() *insights.Context {
	return &insights.Context{
		FreshnessH:  c.FreshnessH,
		Coverage30d: c.Coverage30d,
		MA30:        c.MA30,
		P30:         c.P30,
		P70:         c.P70,
	}
}

// Validate checks every observation and reports the first failure.
func (s *ObservationSet) Validate() error {
	for i := range s.Observations {
		if err := s.Observations[i].Validate(); err != nil {
			return fmt.Errorf("observation %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a catalog definition.
func (d *Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid metric definition %q: %w", d.ID, err)
	}
	return nil
}
