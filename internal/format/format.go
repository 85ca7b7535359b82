// Package format renders metric values for display. It holds no business
// logic: every function is a deterministic, one-way transform.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotAvailable is rendered for missing or non-numeric values.
const NotAvailable = "N/A"

// DefaultLocale is the locale of the dashboard audience.
const DefaultLocale = "es-AR"

// Unit names understood by FormatValue.
const (
	UnitPercent    = "percent"
	UnitPercentSym = "%"
	UnitARS        = "ARS"
	UnitUSD        = "USD"
	UnitMillionARS = "million_ARS"
	UnitMillionUSD = "million_USD"
	UnitRatio      = "ratio"
	UnitVolatility = "volatility"
)

// Volatility display bands (percent).
const (
	volatilityLowBand  = 0.5
	volatilityHighBand = 2.0
)

// Formatter renders values using a locale printer for separators.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale tag such as "es-AR".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

var defaultFormatter = &Formatter{printer: message.NewPrinter(language.MustParse(DefaultLocale))}

// Default returns the es-AR formatter.
func Default() *Formatter {
	return defaultFormatter
}

// FormatValue renders value for unit with the default formatter.
func FormatValue(value *float64, unit string) string {
	return defaultFormatter.FormatValue(value, unit)
}

// FormatValue renders value according to unit. nil, NaN and ±Inf render as N/A
// for every unit.
func (f *Formatter) FormatValue(value *float64, unit string) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return NotAvailable
	}
	v := *value

	switch unit {
	case UnitPercent, UnitPercentSym:
		return FormatPercent(v, 1)
	case UnitARS:
		return f.FormatCurrency(v, UnitARS)
	case UnitUSD:
		return f.FormatCurrency(v, UnitUSD)
	case UnitMillionARS:
		return FormatMillions(v, UnitARS, 1)
	case UnitMillionUSD:
		return FormatMillions(v, UnitUSD, 1)
	case UnitRatio:
		return FormatRatio(v)
	case UnitVolatility:
		return FormatVolatility(v)
	default:
		return f.FormatDecimal(v)
	}
}

// exactFloatExponent is low enough for NewFromFloatWithExponent to keep every
// binary digit of a float64.
const exactFloatExponent = -1074

// round rounds the exact binary value of v half away from zero, so 2.675
// (stored as 2.67499...) rounds down.
func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(v, exactFloatExponent).Round(places)
}

// Fixed renders v with exactly places decimals, rounding half away from zero.
func Fixed(v float64, places int32) string {
	return round(v, places).StringFixed(places)
}

// FormatPercent renders a signed percentage, e.g. "+1.2%". Values that round
// to zero render as "+0.0%".
func FormatPercent(v float64, decimals int32) string {
	rounded := round(v, decimals)
	sign := ""
	if !rounded.IsNegative() {
		sign = "+"
	}
	return sign + rounded.StringFixed(decimals) + "%"
}

// FormatPercentageChange renders a signed change with one decimal.
func FormatPercentageChange(v float64) string {
	return FormatPercent(v, 1)
}

// FormatDecimal renders v with locale separators and 0-2 decimals.
func (f *Formatter) FormatDecimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(0), number.MaxFractionDigits(2)))
}

// FormatCurrency renders an ARS or USD amount with locale separators.
func (f *Formatter) FormatCurrency(v float64, currency string) string {
	symbol := "$"
	if strings.EqualFold(currency, UnitUSD) {
		symbol = "US$"
	}
	amount := f.FormatDecimal(math.Abs(v))
	if v < 0 {
		return "-" + symbol + " " + amount
	}
	return symbol + " " + amount
}

// FormatMillions renders v in millions, e.g. "1.5M ARS" or "$1.5M".
func FormatMillions(v float64, currency string, decimals int32) string {
	millions := Fixed(v/1_000_000, decimals)
	if strings.EqualFold(currency, UnitUSD) {
		return "$" + millions + "M"
	}
	return millions + "M ARS"
}

// FormatLargeNumber abbreviates with K, M or B suffixes.
func FormatLargeNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return Fixed(v/1e9, 1) + "B"
	case abs >= 1e6:
		return Fixed(v/1e6, 1) + "M"
	case abs >= 1e3:
		return Fixed(v/1e3, 1) + "K"
	default:
		return Fixed(v, 1)
	}
}

// FormatRatio renders a coverage ratio with two decimals after scale
// normalization.
func FormatRatio(v float64) string {
	return Fixed(NormalizeRatioScale(v), 2)
}

// NormalizeRatioScale compensates for ratios stored with an inconsistent
// scale upstream: values above 1000 are read as hundred-thousandths and
// values above 100 as hundredths. Classification never uses this.
//
// TODO: confirm the upstream ratio units with the metrics API owners and
// drop this heuristic once the feed is consistent.
func NormalizeRatioScale(v float64) float64 {
	switch {
	case v > 1000:
		return v / 100000
	case v > 100:
		return v / 100
	default:
		return v
	}
}

// VolatilityLabel names the volatility band of v (percent).
func VolatilityLabel(v float64) string {
	switch {
	case v < volatilityLowBand:
		return "baja"
	case v > volatilityHighBand:
		return "alta"
	default:
		return "normal"
	}
}

// FormatVolatility renders a volatility percentage with its band, e.g. "1.25% (normal)".
func FormatVolatility(v float64) string {
	return Fixed(v, 2) + "% (" + VolatilityLabel(v) + ")"
}
