package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
)

// EnvDiscordToken overrides the configured Discord token when set.
const EnvDiscordToken = "UNITBOT_DISCORD_TOKEN"

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService maps configuration keys onto domain.Settings.
type SettingsService struct {
	store  driven.ConfigStore
	getenv func(string) string
}

// NewSettingsService creates a settings service over store.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store, getenv: os.Getenv}
}

// Get returns the current settings with defaults applied.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.DiscordToken = s.store.GetString(domain.KeyDiscordToken)
	if token := s.getenv(EnvDiscordToken); token != "" {
		settings.DiscordToken = token
	}
	if prefix := s.store.GetString(domain.KeyDiscordPrefix); prefix != "" {
		settings.CommandPrefix = prefix
	}
	settings.Owners = s.store.GetStringSlice(domain.KeyDiscordOwners)
	if _, ok := s.store.Get(domain.KeyRepliesPerMinute); ok {
		settings.RateLimit.RepliesPerMinute = s.store.GetInt(domain.KeyRepliesPerMinute)
	}
	if burst := s.store.GetInt(domain.KeyReplyBurst); burst > 0 {
		settings.RateLimit.Burst = burst
	}
	settings.DataDir = s.store.GetString(domain.KeyDataDir)
	settings.Verbose = s.store.GetBool(domain.KeyVerbose)

	if settings.RateLimit.RepliesPerMinute < 0 {
		return settings, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, domain.KeyRepliesPerMinute)
	}
	return settings, nil
}

// Set parses value according to key and stores it.
func (s *SettingsService) Set(key, value string) error {
	var typed any
	switch key {
	case domain.KeyDiscordToken, domain.KeyDiscordPrefix, domain.KeyDataDir:
		typed = value
	case domain.KeyDiscordOwners:
		var owners []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				owners = append(owners, o)
			}
		}
		typed = owners
	case domain.KeyRepliesPerMinute, domain.KeyReplyBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
		}
		typed = n
	case domain.KeyVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		typed = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.store.Set(key, typed); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Reload re-reads the store and returns the new settings.
func (s *SettingsService) Reload() (domain.Settings, error) {
	if err := s.store.Load(); err != nil {
		return domain.Settings{}, fmt.Errorf("reloading config: %w", err)
	}
	return s.Get()
}
