package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingChatHandler(t *testing.T) {
	wrapped := fmt.Errorf("creating app: %w", ErrMissingChatHandler)

	assert.True(t, errors.Is(wrapped, ErrMissingChatHandler))
	assert.Contains(t, ErrMissingChatHandler.Error(), "tui:")
}
