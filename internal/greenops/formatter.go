package greenops

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
// Non-finite values are rendered as "NaN", "∞" or "-∞".
func FormatFloat(f float64, precision int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}

	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	// Round half away from zero before formatting; strconv rounds half to even.
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	// "-0.5" parses to 0; keep the sign.
	sign := ""
	if n == 0 && strings.HasPrefix(intPart, "-") {
		sign = "-"
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatIntensity renders an intensity with its domain unit, e.g.
// "412.3 gCO2eq/kWh". A nil value renders as NotAvailable.
func FormatIntensity(value *float64, domain Domain, precision int) string {
	if value == nil {
		return NotAvailable
	}
	return FormatFloat(*value, precision) + " " + domain.Unit()
}

// FormatRatio renders a ratio as a percentage, e.g. "25.0%".
// A ratio without a value renders as NotAvailable.
func FormatRatio(r Ratio, precision int) string {
	if !r.HasValue() {
		return NotAvailable
	}
	const percent = 100
	return FormatFloat(r.Value()*percent, precision) + "%"
}
