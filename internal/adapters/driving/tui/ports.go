// Package tui provides an interactive terminal chat simulator for unitbot.
// Lines typed by the user go through the same chat handler as Discord messages.
package tui

import (
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Chat handles every submitted line.
	Chat driving.ChatHandler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatHandler
	}
	return nil
}
