// Package discord connects the chat handler to a Discord gateway session.
// Inbound MESSAGE_CREATE events become domain messages; replies are posted
// as message references so they thread under the original.
package discord

import "errors"

// ErrMissingChatHandler is returned when Run is given no chat handler.
var ErrMissingChatHandler = errors.New("discord: chat handler is required")

// ErrNotConnected is returned when sending before the session is open.
var ErrNotConnected = errors.New("discord: session not open")
