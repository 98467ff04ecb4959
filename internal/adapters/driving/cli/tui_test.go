package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.NotNil(t, tuiCmd.Flags().Lookup("user-id"))
}

func TestNewTUIApp(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	app, err := newTUIApp(tuiCmd)

	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestNewTUIApp_ResponderNotConfigured(t *testing.T) {
	old := responder
	responder = nil
	defer func() { responder = old }()

	_, err := newTUIApp(tuiCmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "responder not configured")
}
