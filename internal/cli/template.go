// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smc-journal/internal/models"
)

// addTemplateCommands adds checklist template management commands.
func addTemplateCommands(rootCmd *cobra.Command, a *App) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Checklist template management",
		Long: `Manage the coins, sessions, confluences, dashboard widgets and
planned trading days of your entry template.

Deactivating a confluence hides it from new entry forms; trades that
already ticked it keep their data and stay in the breakdowns.`,
	}

	cmd.AddCommand(newTemplateShowCmd(a))
	cmd.AddCommand(newCoinCmd(a))
	cmd.AddCommand(newSessionCmd(a))
	cmd.AddCommand(newConfluenceCmd(a))
	cmd.AddCommand(newWidgetsCmd(a))
	cmd.AddCommand(newDaysCmd(a))

	rootCmd.AddCommand(cmd)
}

func newTemplateShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current template",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			tpl := j.User().Template

			if output.IsJSON() {
				return output.JSON(tpl)
			}

			output.Bold("Coins (%d/%d)", len(tpl.Coins), models.MaxCoins)
			for _, c := range tpl.Coins {
				output.Printf("  %s\n", c)
			}
			output.Println()

			output.Bold("Sessions")
			for _, s := range tpl.Sessions {
				output.Printf("  %s\n", s)
			}
			output.Println()

			output.Bold("Confluences")
			for _, f := range tpl.CustomConfluences {
				state := output.Green("active")
				if !f.Active {
					state = output.DimText("hidden")
				}
				output.Printf("  %s  %s (%s)\n", PadRight(f.ID, 18), f.Label, state)
			}
			output.Println()

			output.Bold("Dashboard Widgets")
			for i, w := range tpl.DashboardWidgets {
				output.Printf("  %d. %s\n", i+1, w)
			}
			output.Println()

			output.Bold("Planned Trading Days")
			output.Printf("  %s\n", FormatDays(tpl.PlannedTradingDays))
			return nil
		},
	}
}

func newCoinCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coin",
		Short: "Manage tracked coins",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <symbol>",
		Short: "Add a coin to the template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.AddCoin(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Coin added")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <symbol>",
		Short: "Remove a coin from the template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.RemoveCoin(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Coin removed")
			return nil
		},
	})

	return cmd
}

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage trading sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.AddSession(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Session added")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <old> <new>",
		Short: "Rename a session in place",
		Long: `Rename a session, keeping its position in the list.

Historical trades keep the session name they were logged with.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.EditSession(ctx, args[0], args[1]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Session renamed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.RemoveSession(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Session removed")
			return nil
		},
	})

	return cmd
}

func newConfluenceCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confluence",
		Short: "Manage confluence checklist fields",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "add <id> <label>",
		Short:   "Add a custom confluence field",
		Example: `  smc-journal template confluence add breakerBlock "Breaker Block"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.AddConfluence(ctx, args[0], args[1]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Confluence added")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Activate or hide a confluence field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.ToggleConfluence(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			for _, f := range j.User().Template.CustomConfluences {
				if f.ID == args[0] {
					if f.Active {
						output.Success("✓ %s is now shown on entry forms", f.Label)
					} else {
						output.Success("✓ %s hidden; historical trade data kept", f.Label)
					}
				}
			}
			return nil
		},
	})

	return cmd
}

func newWidgetsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "widgets <id>...",
		Short: "Set the dashboard widget order",
		Long: `Set the dashboard widgets and their order.

Known widgets: burnout, streaks, kpis, consistency, insights_preview.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.SetWidgets(ctx, args); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Widgets updated")
			return nil
		},
	}
}

func newDaysCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Manage planned trading days",
		Long: `Manage planned trading days as weekday indices, Sunday = 0.

Planned days are your own schedule; the priority-day flag stamped on
trades is a fixed Tue/Wed/Thu policy and does not follow this setting.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "set <day>...",
		Short:   "Replace the planned days",
		Example: `  smc-journal template days set 1 2 3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if err := j.SetPlannedDays(ctx, days); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Planned days: %s", FormatDays(j.User().Template.PlannedTradingDays))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <day>",
		Short: "Toggle a single planned day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if err := j.TogglePlannedDay(ctx, days[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Planned days: %s", FormatDays(j.User().Template.PlannedTradingDays))
			return nil
		},
	})

	return cmd
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid day %q, expected 0 (Sunday) to 6 (Saturday)", arg)
		}
		days = append(days, d)
	}
	return days, nil
}
