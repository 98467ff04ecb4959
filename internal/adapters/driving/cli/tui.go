package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui"
	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

var (
	tuiUserID   string
	tuiUserName string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Chat with unitbot in the terminal",
	Long: `Opens an interactive chat simulator. Every line you send goes through
the same handler the Discord bot uses, so commands like !about and
!birthday 16/11 work here too.

Controls:
  Enter     - Send
  PgUp/PgDn - Scroll
  Ctrl+L    - Clear transcript
  Esc       - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiUserID, "user-id", "local-user", "user ID to chat as")
	tuiCmd.Flags().StringVar(&tuiUserName, "name", "you", "display name to chat as")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	if responder == nil {
		return nil, errors.New("responder not configured")
	}

	settings := domain.DefaultSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = s
	}
	// Local chat is never throttled.
	settings.RateLimit = domain.RateLimit{}

	notices := tui.NewNoticeBuffer()
	chat := services.NewChatService(responder, birthdayService, notices, settings)

	app, err := tui.NewApp(&tui.Ports{Chat: chat})
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app.WithContext(ctx).WithNotices(notices).WithUser(tuiUserID, tuiUserName)
	return app, nil
}
