package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/unitbot/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

// setupTestServices installs memory-backed services and returns a cleanup
// that restores the previous ones.
func setupTestServices() func() {
	oldResponder := responder
	oldSettings := settingsService
	oldBirthdays := birthdayService
	oldPath := configPath
	oldWatch := watchConfig

	SetServices(&Services{
		Responder:  services.NewResponder(),
		Settings:   services.NewSettingsService(memory.NewConfigStore(nil)),
		Birthdays:  services.NewBirthdayService(memory.NewBirthdayStore(), memory.NewNotificationLog()),
		ConfigPath: "/tmp/unitbot/config.toml",
	})

	return func() {
		responder = oldResponder
		settingsService = oldSettings
		birthdayService = oldBirthdays
		configPath = oldPath
		watchConfig = oldWatch
		closeServices = nil
	}
}

// executeCommand runs the root command with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		convertJSON = false
		birthdayDate = ""
		verbose = false
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
