// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smc-journal/internal/models"
)

// addTradeCommands adds trade logging commands.
func addTradeCommands(rootCmd *cobra.Command, a *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade log management",
		Long:  "Log, review, edit and delete journal trades.",
	}

	cmd.AddCommand(newTradeAddCmd(a))
	cmd.AddCommand(newTradeListCmd(a))
	cmd.AddCommand(newTradeShowCmd(a))
	cmd.AddCommand(newTradeEditCmd(a))
	cmd.AddCommand(newTradeDeleteCmd(a))
	cmd.AddCommand(newTradeSearchCmd(a))
	cmd.AddCommand(newLessonsCmd())

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new trade",
		Long: `Log a new trade against the confluence checklist.

When entry, stop and target are all given the risk:reward ratio is
derived automatically; pass --rr to record it manually instead.`,
		Example: `  smc-journal trade add --coin BTC --session London --result Win --pnl 2.5
  smc-journal trade add --coin ETH --session NY --type Short --entry 3200 --stop 3250 --target 3050 \
      --confluence liquiditySweep --confluence fvg --result Loss --pnl -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			t, err := tradeFromFlags(cmd, models.Trade{
				Date:      time.Now().Format(models.DateLayout),
				Timeframe: models.TimeframeM15,
				Bias:      models.BiasNeutral,
				Type:      models.TypeLong,
				Setup:     j.User().Template.NewChecklist(),
			})
			if err != nil {
				return err
			}
			if t.Coin == "" {
				return fmt.Errorf("--coin is required")
			}
			if t.Session == "" {
				return fmt.Errorf("--session is required")
			}

			saved, err := j.AddTrade(ctx, t)
			if err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(saved)
			}
			output.Success("✓ Trade logged: %s %s (%s)", saved.Coin, saved.Session, saved.Date)
			output.Printf("  ID:          %s\n", saved.ID)
			output.Printf("  Result:      %s\n", output.FormatResult(saved.Result))
			output.Printf("  R:R:         %s\n", FormatRiskReward(saved.RR))
			output.Printf("  P&L:         %s\n", output.FormatPnL(saved.PnLPercent))
			output.Printf("  Confluences: %s\n", FormatChecklist(saved.Setup, j.User().Template))
			if saved.IsPriorityDay {
				output.Info("  Priority day (%s)", saved.DayOfWeek)
			}
			return nil
		},
	}

	addTradeFlags(cmd)
	return cmd
}

func newTradeListCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			trades := j.Trades()
			if limit > 0 && len(trades) > limit {
				trades = trades[:limit]
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades logged yet.")
				output.Dim("Tip: log your first trade with 'smc-journal trade add'.")
				return nil
			}

			renderTradeTable(output, trades, j.User().Template)
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum trades to show (0 for all)")
	return cmd
}

func newTradeShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show full details of a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			t, err := j.TradeByID(args[0])
			if err != nil {
				output.Error("Trade not found: %s", args[0])
				return err
			}

			if output.IsJSON() {
				return output.JSON(t)
			}

			tpl := j.User().Template
			output.Bold("Trade %s", t.ID)
			output.Println()
			output.Printf("  Date:       %s (%s)\n", FormatDate(t.Date), t.DayOfWeek)
			output.Printf("  Asset:      %s\n", t.Coin)
			output.Printf("  Session:    %s\n", t.Session)
			output.Printf("  Timeframe:  %s (HTF %s)\n", t.Timeframe, t.HTFTimeframe)
			output.Printf("  Bias:       %s\n", t.Bias)
			output.Printf("  Type:       %s\n", t.Type)
			output.Printf("  Entry:      %s\n", FormatPrice(t.EntryPrice))
			output.Printf("  Stop:       %s\n", FormatPrice(t.StopLoss))
			output.Printf("  Target:     %s\n", FormatPrice(t.TakeProfit))
			output.Printf("  Exit:       %s\n", FormatPrice(t.ExitPrice))
			output.Printf("  R:R:        %s\n", FormatRiskReward(t.RR))
			output.Printf("  Result:     %s\n", output.FormatResult(t.Result))
			output.Printf("  P&L:        %s\n", output.FormatPnL(t.PnLPercent))
			if t.IsPriorityDay {
				output.Info("  Priority trading day")
			}
			output.Println()

			output.Bold("Confluences (%d ticked)", t.SetupStrength())
			ids := make([]string, 0, len(t.Setup))
			for id := range t.Setup {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				mark := output.DimText("✗")
				if t.Setup[id] {
					mark = output.Green("✓")
				}
				output.Printf("  %s %s\n", mark, tpl.ConfluenceLabel(id))
			}

			if t.LessonSnippet != "" {
				output.Println()
				output.Bold("Lesson")
				output.Printf("  %s\n", t.LessonSnippet)
			}
			if t.Notes != "" {
				output.Println()
				output.Bold("Notes")
				output.Printf("  %s\n", t.Notes)
			}
			return nil
		},
	}
}

func newTradeEditCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <trade-id>",
		Short: "Edit a logged trade",
		Long: `Edit a logged trade in place.

Only the flags you pass are changed; everything else keeps its
recorded value. Day-of-week and the priority flag are restamped when
the date changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			t, err := j.TradeByID(args[0])
			if err != nil {
				output.Error("Trade not found: %s", args[0])
				return err
			}

			updated, err := tradeFromFlags(cmd, t)
			if err != nil {
				return err
			}
			if err := j.UpdateTrade(ctx, updated); err != nil {
				output.Error("Failed to update trade: %v", err)
				return err
			}

			if output.IsJSON() {
				saved, _ := j.TradeByID(updated.ID)
				return output.JSON(saved)
			}
			output.Success("✓ Trade %s updated", updated.ID)
			return nil
		},
	}

	addTradeFlags(cmd)
	return cmd
}

func newTradeDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if err := j.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Trade not found: %s", args[0])
				return err
			}
			output.Success("✓ Trade %s deleted", args[0])
			return nil
		},
	}
}

func newTradeSearchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search trades by asset, notes or lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			matches := j.SearchTrades(args[0])
			if output.IsJSON() {
				return output.JSON(matches)
			}
			if len(matches) == 0 {
				output.Info("No trades match %q.", args[0])
				return nil
			}
			renderTradeTable(output, matches, j.User().Template)
			return nil
		},
	}
}

func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List the built-in lesson snippets",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(models.LessonSnippets)
				return
			}
			output.Bold("Lesson Snippets")
			for i, snippet := range models.LessonSnippets {
				output.Printf("  %d. %s\n", i+1, snippet)
			}
		},
	}
}

// addTradeFlags registers the shared trade entry flags.
func addTradeFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Trade date (YYYY-MM-DD, default today)")
	cmd.Flags().String("coin", "", "Asset symbol (e.g. BTC)")
	cmd.Flags().String("session", "", "Trading session (e.g. London)")
	cmd.Flags().String("timeframe", "", "Entry timeframe (default 15m)")
	cmd.Flags().String("htf", "", "Higher timeframe (e.g. 4H)")
	cmd.Flags().String("bias", "", "Directional bias: Bull, Bear or Neutral")
	cmd.Flags().String("type", "", "Trade direction: Long or Short")
	cmd.Flags().Float64("entry", 0, "Entry price")
	cmd.Flags().Float64("stop", 0, "Stop loss price")
	cmd.Flags().Float64("target", 0, "Take profit price")
	cmd.Flags().Float64("exit", 0, "Exit price")
	cmd.Flags().Float64("rr", 0, "Risk:reward ratio (overridden when prices are set)")
	cmd.Flags().String("result", "", "Outcome: Win, Loss or Break-even")
	cmd.Flags().Float64("pnl", 0, "Profit or loss in percent")
	cmd.Flags().StringSlice("confluence", nil, "Confluence id to tick (repeatable)")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().Int("lesson", 0, "Lesson snippet number (see 'trade lessons')")
	cmd.Flags().String("screenshot", "", "Path or URL of a chart screenshot")
}

// tradeFromFlags overlays the set flags onto base. Used by both add
// (base = defaults) and edit (base = stored trade).
func tradeFromFlags(cmd *cobra.Command, base models.Trade) (models.Trade, error) {
	t := base
	flags := cmd.Flags()

	if flags.Changed("date") {
		date, _ := flags.GetString("date")
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return t, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
		t.Date = date
	}
	if flags.Changed("coin") {
		coin, _ := flags.GetString("coin")
		t.Coin = strings.ToUpper(strings.TrimSpace(coin))
	}
	if flags.Changed("session") {
		t.Session, _ = flags.GetString("session")
	}
	if flags.Changed("timeframe") {
		t.Timeframe, _ = flags.GetString("timeframe")
	}
	if flags.Changed("htf") {
		t.HTFTimeframe, _ = flags.GetString("htf")
	}
	if flags.Changed("bias") {
		bias, _ := flags.GetString("bias")
		switch models.Bias(bias) {
		case models.BiasBull, models.BiasBear, models.BiasNeutral:
			t.Bias = models.Bias(bias)
		default:
			return t, fmt.Errorf("invalid bias %q, expected Bull, Bear or Neutral", bias)
		}
	}
	if flags.Changed("type") {
		direction, _ := flags.GetString("type")
		switch models.TradeType(direction) {
		case models.TypeLong, models.TypeShort:
			t.Type = models.TradeType(direction)
		default:
			return t, fmt.Errorf("invalid type %q, expected Long or Short", direction)
		}
	}
	if flags.Changed("entry") {
		t.EntryPrice, _ = flags.GetFloat64("entry")
	}
	if flags.Changed("stop") {
		t.StopLoss, _ = flags.GetFloat64("stop")
	}
	if flags.Changed("target") {
		t.TakeProfit, _ = flags.GetFloat64("target")
	}
	if flags.Changed("exit") {
		t.ExitPrice, _ = flags.GetFloat64("exit")
	}
	if flags.Changed("rr") {
		t.RR, _ = flags.GetFloat64("rr")
	}
	if flags.Changed("result") {
		result, _ := flags.GetString("result")
		switch models.Result(result) {
		case models.ResultWin, models.ResultLoss, models.ResultBE:
			t.Result = models.Result(result)
		default:
			return t, fmt.Errorf("invalid result %q, expected Win, Loss or Break-even", result)
		}
	}
	if flags.Changed("pnl") {
		t.PnLPercent, _ = flags.GetFloat64("pnl")
	}
	if flags.Changed("confluence") {
		ids, _ := flags.GetStringSlice("confluence")
		if t.Setup == nil {
			t.Setup = make(models.Checklist)
		}
		for _, id := range ids {
			t.Setup[id] = true
		}
	}
	if flags.Changed("notes") {
		t.Notes, _ = flags.GetString("notes")
	}
	if flags.Changed("lesson") {
		n, _ := flags.GetInt("lesson")
		if n < 1 || n > len(models.LessonSnippets) {
			return t, fmt.Errorf("invalid lesson number %d, expected 1-%d", n, len(models.LessonSnippets))
		}
		t.LessonSnippet = models.LessonSnippets[n-1]
	}
	if flags.Changed("screenshot") {
		t.Screenshot, _ = flags.GetString("screenshot")
	}

	t.RR = models.ComputeRR(t.EntryPrice, t.StopLoss, t.TakeProfit, t.RR)
	return t, nil
}

func renderTradeTable(output *Output, trades []models.Trade, tpl models.Template) {
	table := NewTable(output, "ID", "Date", "Asset", "Session", "Type", "Result", "R:R", "P&L", "Setup")
	for _, t := range trades {
		table.AddRow(
			TruncateString(t.ID, 8),
			t.Date,
			t.Coin,
			TruncateString(t.Session, 12),
			string(t.Type),
			output.FormatResult(t.Result),
			FormatRiskReward(t.RR),
			output.FormatPnL(t.PnLPercent),
			FormatChecklist(t.Setup, tpl),
		)
	}
	table.Render()
	output.Println()
	output.Dim("%d trade(s)", len(trades))
}
