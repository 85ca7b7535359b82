package insights

import (
	"fmt"
	"math"
	"strings"
)

// qualityInputs resolves freshness and coverage with their neutral defaults
// (fresh data, full coverage) when the context omits them.
func qualityInputs(ctx *Context) (freshnessH, coverage30d float64) {
	freshnessH, coverage30d = 0, 100
	if ctx.FreshnessH != nil {
		freshnessH = *ctx.FreshnessH
	}
	if ctx.Coverage30d != nil {
		coverage30d = *ctx.Coverage30d
	}
	return freshnessH, coverage30d
}

// CalcConfidence derives a confidence level purely from data-pipeline health.
// A nil context yields media.
func CalcConfidence(ctx *Context) Confidence {
	if ctx == nil {
		return ConfidenceMedia
	}

	freshnessH, coverage30d := qualityInputs(ctx)

	if freshnessH <= FreshnessExcellent && coverage30d >= CoverageExcellent {
		return ConfidenceAlta
	}

	if freshnessH <= FreshnessPoor || (coverage30d >= CoverageGood && coverage30d < CoverageExcellent) {
		return ConfidenceMedia
	}

	return ConfidenceBaja
}

// MakeDataNote builds the staleness/coverage caveats for a context and
// appends any extra issues verbatim. Returns "" when nothing applies.
func MakeDataNote(ctx *Context, issues ...string) string {
	if ctx == nil && len(issues) == 0 {
		return ""
	}

	var notes []string

	if ctx != nil {
		freshnessH, coverage30d := qualityInputs(ctx)

		if freshnessH > FreshnessGood {
			notes = append(notes, fmt.Sprintf(dataNoteStaleF, int64(math.Round(freshnessH))))
		}

		if coverage30d < CoverageExcellent {
			notes = append(notes, fmt.Sprintf(dataNoteCovF, int64(math.Round(coverage30d))))
		}
	}

	notes = append(notes, issues...)

	return strings.Join(notes, " ")
}

// Direction classifies the sign of a change, treating |v| < 0.001 as flat.
func Direction(value float64) Icon {
	if math.Abs(value) < DirectionEpsilon {
		return IconFlat
	}
	if value > 0 {
		return IconUp
	}
	return IconDown
}

// MagnitudeOf buckets the absolute size of a change.
func MagnitudeOf(value float64) Magnitude {
	abs := math.Abs(value)
	switch {
	case abs >= MagnitudeFuerteAt:
		return MagnitudeFuerte
	case abs >= MagnitudeModAt:
		return MagnitudeModerado
	case abs >= MagnitudeLeveAt:
		return MagnitudeLeve
	default:
		return MagnitudeMinimo
	}
}

// RiskColor maps a risk level to its color hint.
func RiskColor(risk Risk) Color {
	switch risk {
	case RiskPositive:
		return ColorGreen
	case RiskWarning:
		return ColorAmber
	case RiskNegative:
		return ColorRed
	default:
		return ColorGray
	}
}

// RiskIcon derives the icon from risk and the arithmetic sign of the value.
// Direction follows the raw number, not the judgment: a favorable
// contraction of the monetary base still points down.
func RiskIcon(risk Risk, value float64) Icon {
	if risk == RiskNeutral {
		return IconFlat
	}
	if value > 0 {
		return IconUp
	}
	return IconDown
}

// PriorityFromRisk maps risk to a watch-item priority.
func PriorityFromRisk(risk Risk) Priority {
	switch risk {
	case RiskNegative:
		return PriorityHigh
	case RiskWarning:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RiskFromPriority is the inverse mapping used by callers that rank by severity.
func RiskFromPriority(priority Priority) Risk {
	switch priority {
	case PriorityHigh:
		return RiskNegative
	case PriorityMedium:
		return RiskWarning
	case PriorityLow:
		return RiskPositive
	default:
		return RiskNeutral
	}
}

// severityRank orders risks for the daily reading: lower is more severe.
func severityRank(risk Risk) int {
	switch risk {
	case RiskNegative:
		return 0
	case RiskWarning:
		return 1
	case RiskPositive:
		return 2
	default:
		return 3
	}
}

// priorityRank orders watch items: lower comes first.
func priorityRank(priority Priority) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
