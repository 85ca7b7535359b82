package insights

import "math"

// Family identifies a metric family and therefore its classifier.
type Family string

const (
	FamilyReserves   Family = "reserves"
	FamilyBase7d     Family = "base_7d"
	FamilyBase30d    Family = "base_30d"
	FamilyRatio      Family = "ratio"
	FamilyVolatility Family = "volatility"
	FamilyTrend      Family = "trend"
	FamilyDefault    Family = "default"
)

// Period selects the monetary-base threshold table.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
)

// verdict is the family-specific part of an interpretation, before the
// common wrapper adds confidence, data note and presentation hints.
type verdict struct {
	headline string
	summary  string
	why      string
	watch    string
	risk     Risk
}

type classifyFunc func(value float64, ctx *Context, meta Metadata) verdict

var classifiers = map[Family]classifyFunc{
	FamilyReserves:   classifyReserves,
	FamilyBase7d:     classifyBase7d,
	FamilyBase30d:    classifyBase30d,
	FamilyRatio:      classifyRatio,
	FamilyVolatility: classifyVolatility,
	FamilyTrend:      classifyTrend,
	FamilyDefault:    classifyDefault,
}

// Interpreter converts a value of one metric family into an Interpretation.
// It holds no mutable state and is safe to share between goroutines.
type Interpreter struct {
	family   Family
	classify classifyFunc
}

// NewInterpreter returns the interpreter for a family. Unknown families get
// the default classifier.
func NewInterpreter(family Family) *Interpreter {
	classify, ok := classifiers[family]
	if !ok {
		family = FamilyDefault
		classify = classifyDefault
	}
	return &Interpreter{family: family, classify: classify}
}

// Family returns the metric family this interpreter classifies.
func (i *Interpreter) Family() Family {
	return i.family
}

// Interpret classifies value. Missing or non-finite values short-circuit to
// the no-data interpretation with baja confidence, ignoring ctx.
func (i *Interpreter) Interpret(value *float64, ctx *Context, meta Metadata) Interpretation {
	if IsInvalidValue(value) {
		return NoDataInterpretation()
	}

	v := *value
	out := i.classify(v, ctx, meta)

	return Interpretation{
		Headline:   out.headline,
		Summary:    out.summary,
		Why:        out.why,
		Watch:      out.watch,
		Risk:       out.risk,
		Confidence: CalcConfidence(ctx),
		DataNote:   MakeDataNote(ctx),
		Icon:       RiskIcon(out.risk, v),
		Color:      RiskColor(out.risk),
	}
}

// NoDataInterpretation is returned for missing or invalid values.
func NoDataInterpretation() Interpretation {
	return Interpretation{
		Headline:   headlineNoData,
		Summary:    summaryNoData,
		Why:        whyNoData,
		Risk:       RiskNeutral,
		Confidence: ConfidenceBaja,
		DataNote:   DataNoteNoData,
		Icon:       IconNA,
		Color:      ColorGray,
	}
}

func classifyReserves(value float64, _ *Context, _ Metadata) verdict {
	switch {
	case value >= ReservesStrongPositive:
		return verdict{headlineStrong, withValue(summaryReservesStrongF, value, 1), whyReservesMore, "", RiskPositive}
	case value >= ReservesMildPositive:
		return verdict{headlineMild, withValue(summaryReservesMildUpF, value, 1), whyReservesMore, "", RiskPositive}
	case value >= ReservesNeutral:
		return verdict{headlineNoChanges, summaryReservesStable, whyReserves, "", RiskNeutral}
	case value >= ReservesMildNegative:
		return verdict{headlineAttentionMild, withValue(summaryReservesMildDnF, value, 1), whyReserves, WatchReservesDown, RiskWarning}
	default:
		return verdict{headlinePressure, withValue(summaryReservesDropF, value, 1), whyReservesLess, WatchReservesDown, RiskNegative}
	}
}

// baseTable holds one period's cutoffs and copy. Lower values are better.
type baseTable struct {
	strongPositive float64
	mildPositive   float64
	neutral        float64
	mildNegative   float64

	strongDown, mildDown, stable, mildUp, strongUp string
	mildNegativeHeadline, strongNegativeHeadline   string
	watch                                          string
}

var baseTables = map[Period]baseTable{
	Period7d: {
		strongPositive:         Base7dStrongPositive,
		mildPositive:           Base7dMildPositive,
		neutral:                Base7dNeutral,
		mildNegative:           Base7dMildNegative,
		strongDown:             summaryBase7dStrongDnF,
		mildDown:               summaryBase7dMildDnF,
		stable:                 summaryBase7dStable,
		mildUp:                 summaryBase7dMildUpF,
		strongUp:               summaryBase7dStrongUpF,
		mildNegativeHeadline:   headlineAttentionIncrease,
		strongNegativeHeadline: headlineMoreMoney,
		watch:                  WatchBaseUp7d,
	},
	Period30d: {
		strongPositive:         Base30dStrongPositive,
		mildPositive:           Base30dMildPositive,
		neutral:                Base30dNeutral,
		mildNegative:           Base30dMildNegative,
		strongDown:             summaryBase30dStrDnF,
		mildDown:               summaryBase30dMildDnF,
		stable:                 summaryBase30dStable,
		mildUp:                 summaryBase30dMildUpF,
		strongUp:               summaryBase30dStrUpF,
		mildNegativeHeadline:   headlineModerateExpansion,
		strongNegativeHeadline: headlineExpansion,
		watch:                  WatchBaseUp30d,
	},
}

func classifyBase7d(value float64, _ *Context, _ Metadata) verdict {
	return classifyBase(value, Period7d)
}

func classifyBase30d(value float64, _ *Context, _ Metadata) verdict {
	return classifyBase(value, Period30d)
}

func classifyBase(value float64, period Period) verdict {
	t := baseTables[period]

	switch {
	case value <= t.strongPositive:
		return verdict{headlineContraction, withValue(t.strongDown, value, 1), whyBaseLess, "", RiskPositive}
	case value <= t.mildPositive:
		return verdict{headlineReduction, withValue(t.mildDown, value, 1), whyBaseLess, "", RiskPositive}
	case value <= t.neutral:
		return verdict{headlineNoChanges, t.stable, whyBaseMore, "", RiskNeutral}
	case value <= t.mildNegative:
		return verdict{t.mildNegativeHeadline, withValue(t.mildUp, value, 1), whyBasePressure, t.watch, RiskWarning}
	default:
		return verdict{t.strongNegativeHeadline, withValue(t.strongUp, value, 1), whyBasePressure, t.watch, RiskNegative}
	}
}

func classifyRatio(value float64, _ *Context, _ Metadata) verdict {
	switch {
	case value >= RatioStrong:
		return verdict{headlineRobust, withValue(summaryRatioStrongF, value, 2), whyRatioStrong, "", RiskPositive}
	case value >= RatioWeak:
		return verdict{headlineMixed, withValue(summaryRatioMixedF, value, 2), whyRatioMixed, "", RiskWarning}
	default:
		return verdict{headlineFragile, withValue(summaryRatioWeakF, value, 2), whyRatioWeak, WatchRatioLow, RiskNegative}
	}
}

// classifyVolatility uses percentile baselines when known, else the fixed
// cutoffs. Each percentile replaces its own cutoff; a zero percentile
// counts as unknown.
func classifyVolatility(value float64, ctx *Context, meta Metadata) verdict {
	isLow := value < VolatilityLow
	if p30, ok := baseline(ctx, meta, "p30"); ok {
		isLow = value < p30
	}

	isHigh := value > VolatilityHigh
	if p70, ok := baseline(ctx, meta, "p70"); ok {
		isHigh = value > p70
	}

	switch {
	case isLow:
		return verdict{headlineCalm, summaryVolatilityLow, whyVolatilityLow, "", RiskPositive}
	case isHigh:
		return verdict{headlineVolatile, summaryVolatilityHigh, whyVolatility, WatchVolatilityHigh, RiskNegative}
	default:
		return verdict{headlineNormal, summaryVolatilityNorm, whyVolatility, "", RiskNeutral}
	}
}

// baseline looks a percentile up in the context first, then in metadata.
func baseline(ctx *Context, meta Metadata, key string) (float64, bool) {
	if ctx != nil {
		var p *float64
		switch key {
		case "p30":
			p = ctx.P30
		case "p70":
			p = ctx.P70
		case "ma30":
			p = ctx.MA30
		}
		if p != nil && *p != 0 {
			return *p, true
		}
	}
	if v, ok := meta.Float(key); ok && v != 0 {
		return v, true
	}
	return 0, false
}

func classifyTrend(value float64, _ *Context, _ Metadata) verdict {
	switch {
	case math.Abs(value) < TrendEpsilon:
		return verdict{headlineNoTrend, summaryTrendStable, whyTrend, "", RiskNeutral}
	case value > TrendThreshold:
		return verdict{headlineBullish, summaryTrendBullish, whyTrend, "", RiskNegative}
	case value < -TrendThreshold:
		return verdict{headlineCooling, summaryTrendBearish, whyTrend, "", RiskPositive}
	default:
		return verdict{headlineNoTrend, summaryTrendStable, whyTrend, "", RiskNeutral}
	}
}

func classifyDefault(_ float64, _ *Context, _ Metadata) verdict {
	return verdict{headlineMonitored, summaryMonitored, whyMonitored, "", RiskNeutral}
}
