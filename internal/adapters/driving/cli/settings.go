package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change unitbot settings stored in the config file.

Keys:
  discord.token                 bot token (or UNITBOT_DISCORD_TOKEN)
  discord.prefix                command prefix, default "!"
  discord.owners                comma separated user IDs allowed to list birthdays
  responder.replies_per_minute  per-channel reply rate, 0 disables limiting
  responder.burst               replies allowed back to back
  storage.data_dir              directory of the birthday database
  logging.verbose               true to enable debug logging`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	if configPath != "" {
		cmd.Printf("Config file: %s\n", configPath)
	}
	cmd.Println()

	cmd.Println("[Discord]")
	if settings.DiscordToken != "" {
		cmd.Printf("  Token: %s\n", maskToken(settings.DiscordToken))
	} else {
		cmd.Println("  Token: (not set)")
	}
	cmd.Printf("  Prefix: %s\n", settings.CommandPrefix)
	if len(settings.Owners) > 0 {
		cmd.Printf("  Owners: %s\n", strings.Join(settings.Owners, ", "))
	} else {
		cmd.Println("  Owners: (none)")
	}
	cmd.Println()

	cmd.Println("[Responder]")
	if settings.RateLimit.Enabled() {
		cmd.Printf("  Rate limit: %d replies/min per channel, burst %d\n",
			settings.RateLimit.RepliesPerMinute, settings.RateLimit.Burst)
	} else {
		cmd.Println("  Rate limit: off")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Printf("  Verbose logging: %t\n", settings.Verbose)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	shown := value
	if key == domain.KeyDiscordToken {
		shown = maskToken(value)
	}
	cmd.Printf("%s = %s\n", key, shown)
	return nil
}

// maskToken hides all but the ends of a secret.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
