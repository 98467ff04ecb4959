package tui

import "errors"

// ErrMissingChatHandler is returned when the chat handler is not provided.
var ErrMissingChatHandler = errors.New("tui: chat handler is required")
