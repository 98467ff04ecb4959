// Package cli provides the unitbot command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// version is set at build time.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Services wired in by main.
var (
	responder       driving.Responder
	settingsService driving.SettingsService
	birthdayService driving.BirthdayService
	configPath      string
	watchConfig     WatchFunc
)

// WatchFunc blocks until ctx is done, calling onReload whenever the
// configuration changes on disk.
type WatchFunc func(ctx context.Context, onReload func()) error

// Services holds everything the commands run against.
type Services struct {
	Responder  driving.Responder
	Settings   driving.SettingsService
	Birthdays  driving.BirthdayService
	ConfigPath string
	Watch      WatchFunc

	// Close releases resources such as the database. Optional.
	Close func() error
}

// BootstrapFunc builds the services once flags are parsed.
type BootstrapFunc func(configDir string) (*Services, error)

var (
	bootstrap     BootstrapFunc
	closeServices func() error
)

// SetBootstrap registers the function that builds services before any
// command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices installs services directly.
func SetServices(s *Services) {
	responder = s.Responder
	settingsService = s.Settings
	birthdayService = s.Birthdays
	configPath = s.ConfigPath
	watchConfig = s.Watch
	closeServices = s.Close
}

var rootCmd = &cobra.Command{
	Use:   "unitbot",
	Short: "Converts units mentioned in chat messages",
	Long: `unitbot watches chat messages for quantities such as "171 cm" or
"140 pounds" and replies with the metric or imperial equivalent.

Run it as a Discord bot with "unitbot serve", try it locally with
"unitbot tui" or "unitbot convert", or expose it to AI assistants with
"unitbot mcp serve".`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.unitbot)")
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("starting unitbot: %w", err)
	}
	SetServices(s)

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Verbose {
			logger.SetVerbose(true)
		}
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
