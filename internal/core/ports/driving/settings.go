package driving

import "github.com/custodia-labs/unitbot/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (domain.Settings, error)

	// Set stores a single configuration value by key.
	Set(key, value string) error

	// Reload re-reads settings from the underlying store.
	Reload() (domain.Settings, error)
}
