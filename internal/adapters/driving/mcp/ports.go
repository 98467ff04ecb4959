package mcp

import (
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Responder converts quantities found in text.
	Responder driving.Responder

	// Birthdays is optional; without it the birthdays tool reports none.
	Birthdays driving.BirthdayService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Responder == nil {
		return ErrMissingResponder
	}
	return nil
}
