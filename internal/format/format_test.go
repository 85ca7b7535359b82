package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFormatValue_NotAvailable(t *testing.T) {
	units := []string{UnitPercent, UnitPercentSym, UnitARS, UnitUSD, UnitMillionARS, UnitMillionUSD, UnitRatio, UnitVolatility, "", "other"}
	values := []*float64{nil, ptr(math.NaN()), ptr(math.Inf(1)), ptr(math.Inf(-1))}

	for _, unit := range units {
		for _, value := range values {
			assert.Equal(t, NotAvailable, FormatValue(value, unit), "unit %q", unit)
		}
	}
}

func TestFormatValue_Units(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  string
	}{
		{"percent", 1.234, UnitPercent, "+1.2%"},
		{"percent symbol", -2.56, UnitPercentSym, "-2.6%"},
		{"percent zero", 0, UnitPercent, "+0.0%"},
		{"ars", 12345.5, UnitARS, "$ 12.345,5"},
		{"usd", 12345.5, UnitUSD, "US$ 12.345,5"},
		{"negative ars", -12345.5, UnitARS, "-$ 12.345,5"},
		{"million ars", 1_500_000, UnitMillionARS, "1.5M ARS"},
		{"million usd", 2_340_000, UnitMillionUSD, "$2.3M"},
		{"ratio", 0.85, UnitRatio, "0.85"},
		{"volatility", 1.25, UnitVolatility, "1.25% (normal)"},
		{"plain", 12345.678, "", "12.345,68"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(ptr(tt.value), tt.unit))
		})
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "2.0", Fixed(2, 1))
	assert.Equal(t, "7.3", Fixed(7.25, 1))
	assert.Equal(t, "-3.3", Fixed(-3.26, 1))
	assert.Equal(t, "0.50", Fixed(0.5, 2))
	assert.Equal(t, "12", Fixed(12.4, 0))
	assert.Equal(t, "3", Fixed(2.5, 0))
	assert.Equal(t, "-3", Fixed(-2.5, 0))
}

func TestFixed_RoundsStoredBinaryValue(t *testing.T) {
	tests := []struct {
		value  float64
		places int32
		want   string
	}{
		{0.845, 2, "0.84"},
		{2.675, 2, "2.67"},
		{1.005, 2, "1.00"},
		{0.85, 2, "0.85"},
		{1.25, 1, "1.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.value, tt.places), "Fixed(%v, %d)", tt.value, tt.places)
	}
}

func TestFormatPercent_SignFollowsRoundedValue(t *testing.T) {
	assert.Equal(t, "+0.0%", FormatPercent(-0.04, 1))
	assert.Equal(t, "+0.0%", FormatPercent(0, 1))
	assert.Equal(t, "+0.0%", FormatPercent(0.04, 1))
	assert.Equal(t, "-0.1%", FormatPercent(-0.05, 1))
	assert.Equal(t, "-1.2%", FormatPercent(-1.23, 1))
}

func TestFormatPercentageChange(t *testing.T) {
	assert.Equal(t, "+10.0%", FormatPercentageChange(10))
	assert.Equal(t, "-4.5%", FormatPercentageChange(-4.5))
}

func TestFormatLargeNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2_500_000_000, "2.5B"},
		{-3_200_000, "-3.2M"},
		{1234, "1.2K"},
		{999, "999.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLargeNumber(tt.value), "FormatLargeNumber(%v)", tt.value)
	}
}

func TestNormalizeRatioScale(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0.85, 0.85},
		{85, 85},
		{100, 100},
		{150, 1.5},
		{1000, 10},
		{85000, 0.85},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeRatioScale(tt.value), 1e-9, "NormalizeRatioScale(%v)", tt.value)
	}

	assert.Equal(t, "0.85", FormatRatio(85000))
	assert.Equal(t, "1.50", FormatRatio(150))
}

func TestVolatilityLabel(t *testing.T) {
	assert.Equal(t, "baja", VolatilityLabel(0.3))
	assert.Equal(t, "normal", VolatilityLabel(0.5))
	assert.Equal(t, "normal", VolatilityLabel(2))
	assert.Equal(t, "alta", VolatilityLabel(2.5))
	assert.Equal(t, "3.10% (alta)", FormatVolatility(3.1))
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("en-US")
	require.NoError(t, err)
	assert.Equal(t, "12,345.5", f.FormatDecimal(12345.5))
	assert.Equal(t, "US$ 12,345.5", f.FormatCurrency(12345.5, UnitUSD))

	_, err = NewFormatter("@@@")
	assert.Error(t, err)

	assert.Same(t, Default(), Default())
}
