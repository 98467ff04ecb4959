package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

var birthdayDate string

var birthdayCmd = &cobra.Command{
	Use:   "birthday",
	Short: "Manage recorded birthdays",
	Long: `Add, remove and list the birthdays unitbot greets. User IDs are the
Discord user IDs the bot mentions in its greeting.`,
}

var birthdayAddCmd = &cobra.Command{
	Use:   "add <user-id> <dd/mm>",
	Short: "Record a birthday",
	Args:  cobra.ExactArgs(2),
	RunE:  runBirthdayAdd,
}

var birthdayRemoveCmd = &cobra.Command{
	Use:   "remove <user-id>",
	Short: "Forget a birthday",
	Args:  cobra.ExactArgs(1),
	RunE:  runBirthdayRemove,
}

var birthdayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all birthdays",
	RunE:  runBirthdayList,
}

var birthdayTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's birthdays",
	RunE:  runBirthdayToday,
}

func init() {
	birthdayTodayCmd.Flags().StringVar(&birthdayDate, "date", "", "check another day (YYYY-MM-DD)")
	birthdayCmd.AddCommand(birthdayAddCmd)
	birthdayCmd.AddCommand(birthdayRemoveCmd)
	birthdayCmd.AddCommand(birthdayListCmd)
	birthdayCmd.AddCommand(birthdayTodayCmd)
	rootCmd.AddCommand(birthdayCmd)
}

func runBirthdayAdd(cmd *cobra.Command, args []string) error {
	if birthdayService == nil {
		return errors.New("birthday service not configured")
	}

	b, err := birthdayService.Set(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to add birthday: %w", err)
	}
	cmd.Printf("Recorded %s for %s\n", b, b.UserID)
	return nil
}

func runBirthdayRemove(cmd *cobra.Command, args []string) error {
	if birthdayService == nil {
		return errors.New("birthday service not configured")
	}

	if err := birthdayService.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no birthday recorded for %s", args[0])
		}
		return fmt.Errorf("failed to remove birthday: %w", err)
	}
	cmd.Printf("Removed birthday for %s\n", args[0])
	return nil
}

func runBirthdayList(cmd *cobra.Command, _ []string) error {
	if birthdayService == nil {
		return errors.New("birthday service not configured")
	}

	all, err := birthdayService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}
	printBirthdays(cmd, all, "No birthdays recorded.")
	return nil
}

func runBirthdayToday(cmd *cobra.Command, _ []string) error {
	if birthdayService == nil {
		return errors.New("birthday service not configured")
	}

	date := time.Now().UTC()
	if birthdayDate != "" {
		parsed, err := time.Parse(time.DateOnly, birthdayDate)
		if err != nil {
			return fmt.Errorf("%w: --date expects YYYY-MM-DD", domain.ErrInvalidInput)
		}
		date = parsed
	}

	found, err := birthdayService.On(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}
	printBirthdays(cmd, found, "No birthdays on "+date.Format("02/01")+".")
	return nil
}

func printBirthdays(cmd *cobra.Command, list []domain.Birthday, empty string) {
	if len(list) == 0 {
		cmd.Println(empty)
		return
	}
	for _, b := range list {
		cmd.Printf("  %s  %s\n", b, b.UserID)
	}
}
