// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"smc-journal/internal/export"
)

// addExportCommands adds the CSV export command.
func addExportCommands(rootCmd *cobra.Command, a *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trade log to CSV",
		Long: `Export trades to a CSV file.

Notes have markup stripped and commas replaced with semicolons so the
column layout survives spreadsheet imports. With --query only matching
trades are exported.`,
		Example: `  smc-journal export
  smc-journal export --output trades.csv --query BTC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			query, _ := cmd.Flags().GetString("query")
			trades := j.Trades()
			if query != "" {
				trades = j.SearchTrades(query)
			}

			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				path = export.DefaultFileName(time.Now())
			}

			f, err := os.Create(path)
			if err != nil {
				output.Error("Failed to create %s: %v", path, err)
				return err
			}
			defer f.Close()

			if err := export.Write(f, trades); err != nil {
				output.Error("Export failed: %v", err)
				return err
			}

			a.Logger.Info().Str("path", path).Int("trades", len(trades)).Msg("Exported trade log")
			output.Success("✓ Exported %d trade(s) to %s", len(trades), path)
			return nil
		},
	}

	cmd.Flags().String("output", "", "Output file path (default smc_log_<date>.csv)")
	cmd.Flags().String("query", "", "Only export trades matching this search")

	rootCmd.AddCommand(cmd)
}
