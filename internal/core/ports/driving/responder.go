package driving

import "github.com/custodia-labs/unitbot/internal/core/domain"

// Responder turns free text into a unit-conversion reply.
// Implementations are pure and safe for concurrent use.
type Responder interface {
	// Respond returns the reply for text, or false when text holds no
	// recognisable quantity.
	Respond(text string) (string, bool)

	// Conversions returns the quantities recognised in text together
	// with their converted counterparts, in message order.
	Conversions(text string) []domain.Conversion
}
