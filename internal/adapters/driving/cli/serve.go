package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/discord"
	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/services"
	"github.com/custodia-labs/unitbot/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Long: `Connects to Discord and replies to every message that mentions a
quantity. The bot token is read from discord.token in the config file or
from the UNITBOT_DISCORD_TOKEN environment variable. When neither is set
and a terminal is attached, the token is prompted for without echo.

The config file is watched while the bot runs; changes to the reply rate
and command prefix apply without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	token := settings.DiscordToken
	if token == "" && stdinIsTerminal() {
		cmd.Print("Discord bot token: ")
		token = readPassword()
		cmd.Println()
	}
	if token == "" {
		return fmt.Errorf("%w: set %s or %s", domain.ErrMissingToken, domain.KeyDiscordToken, services.EnvDiscordToken)
	}

	bot, err := discord.New(token)
	if err != nil {
		return err
	}

	chat := services.NewChatService(responder, birthdayService, bot, settings)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	if watchConfig != nil {
		go func() {
			err := watchConfig(ctx, func() {
				updated, err := settingsService.Get()
				if err != nil {
					logger.Warn("ignoring config change: %v", err)
					return
				}
				chat.UpdateSettings(updated)
				logger.SetVerbose(verbose || updated.Verbose)
			})
			if err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	cmd.Println("unitbot is running. Press Ctrl+C to stop.")
	return bot.Run(ctx, chat)
}

// stdinIsTerminal reports whether stdin is interactive.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readPassword reads a line without echo when stdin is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if stdinIsTerminal() {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
