package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// Recognize finds every number-then-unit pair in tokens, left to right.
// A unit word whose left neighbour is not a finite float is skipped.
// Returns nil when nothing is recognised.
func Recognize(tokens Tokens) []domain.Quantity {
	// Every exact alias match is also a substring of the message,
	// so this never rejects a message the loop below would accept.
	if !domain.ContainsAnyAlias(tokens.Text()) {
		return nil
	}

	var quantities []domain.Quantity
	for i, tok := range tokens.All() {
		unit, ok := domain.LookupAlias(tok.Word)
		if !ok {
			continue
		}
		if i == 0 {
			logger.Debug("unit %q at start of message, no number", tok.Word)
			continue
		}
		prev := tokens.At(i - 1).Raw
		value, ok := parseMagnitude(prev)
		if !ok {
			logger.Debug("unit %q preceded by non-number %q", tok.Word, prev)
			continue
		}
		quantities = append(quantities, domain.NewQuantity(value, unit))
	}
	return quantities
}

// parseMagnitude parses a decimal float64, rejecting hexadecimal literals
// and out-of-range or non-finite values.
func parseMagnitude(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
