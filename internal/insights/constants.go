package insights

import (
	"fmt"

	"github.com/ternarybob/radar/internal/format"
)

// Reserves 7d thresholds (percentage points). Higher is better.
const (
	ReservesStrongPositive = 2.0
	ReservesMildPositive   = 0.5
	ReservesNeutral        = -0.5
	ReservesMildNegative   = -2.0
)

// Monetary base thresholds (percentage points). Lower is better, so the
// "positive" cutoffs are negative numbers.
const (
	Base7dStrongPositive = -2.0
	Base7dMildPositive   = -0.5
	Base7dNeutral        = 0.5
	Base7dMildNegative   = 2.0

	Base30dStrongPositive = -5.0
	Base30dMildPositive   = -1.0
	Base30dNeutral        = 1.0
	Base30dMildNegative   = 5.0
)

// Reserves-to-base ratio thresholds.
const (
	RatioStrong = 0.8
	RatioWeak   = 0.6
)

// Trend (14d vs 30d) thresholds.
const (
	TrendThreshold = 0.02
	TrendEpsilon   = 0.001
)

// Volatility fallback cutoffs (percent), used when no percentile baseline is known.
const (
	VolatilityLow  = 0.5
	VolatilityHigh = 2.0
)

// Direction epsilon and magnitude cutoffs.
const (
	DirectionEpsilon  = 0.001
	MagnitudeFuerteAt = 5.0
	MagnitudeModAt    = 2.0
	MagnitudeLeveAt   = 0.5
)

// Data quality thresholds (hours and percent).
const (
	FreshnessExcellent = 24.0
	FreshnessGood      = 48.0
	FreshnessPoor      = 72.0
	CoverageExcellent  = 80.0
	CoverageGood       = 60.0
)

// Headlines.
const (
	headlineStrong            = "Señal de alivio"
	headlineMild              = "Aumento leve"
	headlineReduction         = "Reducción leve"
	headlineContraction       = "Contracción fuerte"
	headlineRobust            = "Respaldo robusto"
	headlineCalm              = "Mercado calmo"
	headlineCooling           = "Se enfría el dólar"
	headlinePressure          = "Presión cambiaria"
	headlineMoreMoney         = "Más pesos en la calle"
	headlineFragile           = "Respaldo frágil"
	headlineVolatile          = "Agitación cambiaria"
	headlineBullish           = "Tendencia alcista del dólar"
	headlineExpansion         = "Expansión fuerte"
	headlineAttentionMild     = "Atención: caída leve"
	headlineAttentionIncrease = "Atención: aumento leve"
	headlineMixed             = "Respaldo mixto"
	headlineModerateExpansion = "Atención: expansión moderada"
	headlineNoChanges         = "Sin cambios relevantes"
	headlineNoTrend           = "Sin tendencia definida"
	headlineNormal            = "Volatilidad normal"
	headlineNoData            = "Sin dato concluyente"
	headlineMonitored         = "Métrica en observación"
)

// Fixed summaries.
const (
	summaryReservesStable  = "Las reservas se mantuvieron estables esta semana."
	summaryBase7dStable    = "La base monetaria se mantuvo estable en 7 días hábiles."
	summaryBase30dStable   = "La base monetaria se mantuvo estable en 30 días."
	summaryVolatilityLow   = "La volatilidad del USD está baja esta semana."
	summaryVolatilityNorm  = "La volatilidad del USD está en niveles normales."
	summaryVolatilityHigh  = "La volatilidad del USD está alta; mayor incertidumbre."
	summaryTrendBullish    = "El USD sube más rápido que su promedio mensual."
	summaryTrendBearish    = "El USD baja más rápido que su promedio mensual."
	summaryTrendStable     = "El USD no muestra tendencia clara en el corto plazo."
	summaryNoData          = "No hay datos suficientes para interpretar esta métrica."
	summaryMonitored       = "Esta métrica está siendo monitoreada."
	summaryReservesStrongF = "Las reservas aumentaron con fuerza (~%s%%) esta semana."
	summaryReservesMildUpF = "Las reservas subieron levemente (~%s%%) en 7 días hábiles."
	summaryReservesMildDnF = "Las reservas bajaron levemente (~%s%%) esta semana."
	summaryReservesDropF   = "Las reservas cayeron con fuerza (~%s%%) esta semana."
	summaryBase7dStrongDnF = "La base monetaria se contrajo con fuerza (~%s%%) en 7 días."
	summaryBase7dMildDnF   = "La base monetaria bajó levemente (~%s%%) en 7 días hábiles."
	summaryBase7dMildUpF   = "La base monetaria aumentó levemente (~%s%%) en 7 días hábiles."
	summaryBase7dStrongUpF = "La base monetaria creció con fuerza (~%s%%) en 7 días hábiles."
	summaryBase30dStrDnF   = "La base monetaria se contrajo marcadamente (~%s%%) en el mes."
	summaryBase30dMildDnF  = "La base monetaria bajó moderadamente (~%s%%) en 30 días."
	summaryBase30dMildUpF  = "La base monetaria creció moderadamente (~%s%%) en 30 días."
	summaryBase30dStrUpF   = "La base monetaria creció con fuerza (~%s%%) en 30 días."
	summaryRatioStrongF    = "Las reservas cubren bien a la base monetaria (ratio ~%s)."
	summaryRatioMixedF     = "Las reservas cubren moderadamente a la base monetaria (ratio ~%s)."
	summaryRatioWeakF      = "Las reservas cubren poco a la base monetaria (ratio ~%s)."
)

// Why it matters.
const (
	whyReserves      = "Las reservas son el 'colchón' para estabilizar el dólar."
	whyReservesMore  = "Más reservas = mayor capacidad de estabilizar el dólar."
	whyReservesLess  = "Menos reservas reduce el margen para estabilizar el dólar."
	whyBaseMore      = "Más pesos en circulación suele presionar precios y dólar."
	whyBaseLess      = "Menos pesos en circulación alivia la presión sobre precios y dólar."
	whyBasePressure  = "Más pesos pueden sumar presión sobre precios y dólar."
	whyRatioStrong   = "Más cobertura = peso más confiable."
	whyRatioMixed    = "No es débil, pero tampoco holgado."
	whyRatioWeak     = "Poco 'colchón' en USD para absorber shocks."
	whyVolatility    = "Más oscilación implica mayor incertidumbre de corto plazo."
	whyVolatilityLow = "Menos oscilación implica menor incertidumbre de corto plazo."
	whyTrend         = "La tendencia indica la dirección del dólar en el corto plazo."
	whyNoData        = "Los datos son necesarios para un análisis preciso."
	whyMonitored     = "Todas las métricas aportan información valiosa."
)

// Watch triggers.
const (
	WatchReservesDown   = "Si la caída continúa, podrían activarse alertas por salida de divisas."
	WatchBaseUp7d       = "Si supera +2% semanal, sube el riesgo de inestabilidad."
	WatchBaseUp30d      = "Si supera +5% mensual, sube el riesgo inflacionario."
	WatchRatioLow       = "Si baja de 0.6, aumenta la vulnerabilidad cambiaria."
	WatchVolatilityHigh = "Si persiste alta por 3 días, revisar coberturas."
)

// Data notes.
const (
	DataNoteNoData = "Dato faltante o inválido; verificar fuentes."
	dataNoteStaleF = "Dato con retraso de %dh; puede actualizarse."
	dataNoteCovF   = "Cobertura de %d%% en 30 días; interpretar con cautela."
)

// withValue renders a summary template with the value at the given precision.
func withValue(tmpl string, value float64, places int32) string {
	return fmt.Sprintf(tmpl, format.Fixed(value, places))
}
