package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the recognised units",
	Long:  `Lists every unit the converter recognises, with its aliases and the unit it converts to.`,
	Run:   runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, _ []string) {
	cmd.Printf("%-8s %-12s %-11s %-10s %-10s %s\n", "SYMBOL", "NAME", "CATEGORY", "SYSTEM", "CONVERTS", "ALIASES")
	for _, u := range domain.AllUnits() {
		cmd.Printf("%-8s %-12s %-11s %-10s %-10s %s\n",
			u.Symbol(), u.Name(), u.Category(), u.System(), u.Pair().Symbol(), strings.Join(u.UnitAliases(), ", "))
	}
}
