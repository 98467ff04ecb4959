package services

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// FormatLine renders one reply line, newline included.
// Converted magnitudes below 1 keep full precision; the rest get two decimals.
func FormatLine(original, converted domain.Quantity) string {
	var b strings.Builder
	b.WriteString(formatMagnitude(original.Magnitude))
	b.WriteByte(' ')
	b.WriteString(original.Unit.Symbol())
	b.WriteString(" is ")
	b.WriteString(formatConverted(converted.Magnitude))
	b.WriteByte(' ')
	b.WriteString(converted.Unit.Symbol())
	b.WriteByte('\n')
	return b.String()
}

// FormatReply renders all conversions in order. Empty input yields "".
func FormatReply(conversions []domain.Conversion) string {
	var b strings.Builder
	for _, c := range conversions {
		b.WriteString(FormatLine(c.Original, c.Converted))
	}
	return b.String()
}

// formatMagnitude uses the shortest decimal that round-trips, never an exponent.
func formatMagnitude(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatConverted(v float64) string {
	if v < 1.0 {
		return formatMagnitude(v)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
