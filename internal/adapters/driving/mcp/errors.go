// Package mcp exposes the unit converter as a Model Context Protocol server,
// so AI assistants can convert quantities found in free text.
package mcp

import "errors"

// ErrMissingResponder is returned when the responder is not provided.
var ErrMissingResponder = errors.New("mcp: responder is required")
