package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitbot/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitbot/internal/core/services"
	"github.com/custodia-labs/unitbot/internal/logger"
)

func TestRootCmd_BootstrapReceivesConfigDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer SetBootstrap(nil)
	defer func() { configDir = "" }()

	var gotDir string
	closed := false
	SetBootstrap(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Responder: services.NewResponder(),
			Settings: services.NewSettingsService(memory.NewConfigStore(map[string]any{
				"logging.verbose": true,
			})),
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	})
	defer logger.SetVerbose(false)

	out, err := executeCommand(t, "--config-dir", "/tmp/unitbot-test", "convert", "3 miles")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/unitbot-test", gotDir)
	assert.Equal(t, "3 miles is 4.83 km\n", out)
	assert.True(t, closed)
	assert.True(t, logger.IsVerbose(), "logging.verbose enables debug output")
}

func TestRootCmd_BootstrapError(t *testing.T) {
	defer SetBootstrap(nil)
	SetBootstrap(func(string) (*Services, error) {
		return nil, errors.New("database is locked")
	})

	_, err := executeCommand(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
