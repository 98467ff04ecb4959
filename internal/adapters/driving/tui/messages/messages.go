// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// LineSubmitted is sent when the user presses enter on a non-empty line.
type LineSubmitted struct {
	Message domain.Message
}

// ReplyReceived carries the outcome of handling one submitted line.
// Notices holds anything the bot posted on its own while handling it,
// such as a birthday greeting.
type ReplyReceived struct {
	Reply   domain.Reply
	OK      bool
	Notices []string
	Err     error
}
