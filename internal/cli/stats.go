// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smc-journal/internal/analytics"
)

// addStatsCommands adds analytics commands.
func addStatsCommands(rootCmd *cobra.Command, a *App) {
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newInsightsCmd(a))
	rootCmd.AddCommand(newStreakCmd(a))
}

func newStatsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show performance statistics",
		Long: `Show headline statistics, the equity curve and per-dimension
breakdowns over the whole trade log.

Confluence groups overlap: a trade ticking three confluences counts
once in each of the three groups.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			trades := j.Trades()
			summary := analytics.Aggregate(trades)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"summary":      summary,
					"byAsset":      analytics.ByAsset(trades),
					"bySession":    analytics.BySession(trades),
					"byConfluence": analytics.ByConfluence(trades),
				})
			}

			if summary == nil {
				output.Info("No trades logged yet, nothing to analyze.")
				return nil
			}

			output.Bold("Performance Summary")
			output.Printf("  Total Trades: %d\n", summary.TotalTrades)
			output.Printf("  Wins/Losses:  %d/%d (%d break-even)\n", summary.Wins, summary.Losses, summary.BreakEvens)
			output.Printf("  Win Rate:     %s\n", FormatWinRate(summary.WinRate))
			output.Printf("  Total P&L:    %s\n", output.FormatPnL(summary.TotalPnL))
			output.Printf("  Avg R:R:      %.2f\n", summary.AvgRR)
			output.Println()

			output.Bold("Equity Curve")
			drawEquityCurve(output, summary.EquityCurve)
			output.Println()

			tpl := j.User().Template
			renderBreakdown(output, "By Asset", analytics.ByAsset(trades), nil)
			renderBreakdown(output, "By Session", analytics.BySession(trades), nil)
			renderBreakdown(output, "By Confluence", analytics.ByConfluence(trades), tpl.ConfluenceLabel)
			return nil
		},
	}
	return cmd
}

// drawEquityCurve renders the cumulative P&L series as an ASCII chart.
func drawEquityCurve(output *Output, curve []float64) {
	if len(curve) < 2 {
		output.Println("  Insufficient data for equity curve")
		return
	}

	minEquity := curve[0]
	maxEquity := curve[0]
	for _, e := range curve {
		if e < minEquity {
			minEquity = e
		}
		if e > maxEquity {
			maxEquity = e
		}
	}

	padding := (maxEquity - minEquity) * 0.1
	if padding == 0 {
		padding = 1
	}
	minEquity -= padding
	maxEquity += padding

	width := 40
	height := 8

	chart := make([][]rune, height)
	for i := range chart {
		chart[i] = make([]rune, width)
		for j := range chart[i] {
			chart[i][j] = ' '
		}
	}

	for i := 0; i < len(curve); i++ {
		x := i * width / len(curve)
		y := int((curve[i] - minEquity) / (maxEquity - minEquity) * float64(height-1))
		if y >= 0 && y < height && x >= 0 && x < width {
			chart[height-1-y][x] = '█'
		}
	}

	for i := 0; i < height; i++ {
		label := "        "
		if i == 0 {
			label = PadLeft(fmt.Sprintf("%.1f%%", maxEquity), 8)
		} else if i == height-1 {
			label = PadLeft(fmt.Sprintf("%.1f%%", minEquity), 8)
		}
		output.Printf("  %s │%s\n", label, string(chart[i]))
	}
	output.Printf("           └%s\n", strings.Repeat("─", width))
}

// renderBreakdown prints a group-stats table. label, when non-nil,
// maps group names to display labels.
func renderBreakdown(output *Output, title string, groups []analytics.GroupStats, label func(string) string) {
	output.Bold(title)
	if len(groups) == 0 {
		output.Dim("  No data")
		output.Println()
		return
	}
	table := NewTable(output, "Group", "Trades", "Wins", "Win Rate", "P&L")
	for _, g := range groups {
		name := g.Name
		if label != nil {
			name = label(name)
		}
		table.AddRow(
			TruncateString(name, 28),
			fmt.Sprintf("%d", g.Trades),
			fmt.Sprintf("%d", g.Wins),
			FormatWinRate(g.WinRate()),
			output.FormatPnL(g.PnL),
		)
	}
	table.Render()
	output.Println()
}

func newInsightsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show best-performing session and confluence",
		Long: `Pick the session and confluence with the highest win rate.

Requires at least five logged trades. The picks are a ranking, not a
significance test: a single winning trade makes a 100% group.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			trades := j.Trades()
			insights := analytics.SelectInsights(trades)

			if output.IsJSON() {
				return output.JSON(insights)
			}
			if insights == nil {
				output.Info("Log at least %d trades to unlock insights (%d so far).",
					analytics.MinInsightTrades, len(trades))
				return nil
			}

			tpl := j.User().Template
			output.Bold("Insights")
			renderInsight(output, "Best Session", insights.BestSession, insights.BestSession.Name)
			renderInsight(output, "Best Confluence", insights.BestConfluence,
				tpl.ConfluenceLabel(insights.BestConfluence.Name))
			return nil
		},
	}
}

func renderInsight(output *Output, title string, g analytics.GroupStats, label string) {
	if g.Name == "" {
		output.Printf("  %s: %s\n", title, output.DimText("no winning group yet"))
		return
	}
	output.Printf("  %s: %s (%s win rate over %d trades, %s)\n",
		title, output.BoldText(label), FormatWinRate(g.WinRate()), g.Trades, output.FormatPnL(g.PnL))
}

func newStreakCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the consecutive-day logging streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			user := j.User()
			current := analytics.Streak(j.Trades(), time.Now())

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"current":    current,
					"max":        user.MaxStreak,
					"milestones": user.MilestonesReached,
				})
			}

			output.Bold("Logging Streak")
			output.Printf("  Current: %d day(s)\n", current)
			output.Printf("  Best:    %d day(s)\n", user.MaxStreak)
			if len(user.MilestonesReached) > 0 {
				output.Printf("  Milestones: %s\n", strings.Join(user.MilestonesReached, ", "))
			}
			if current == 0 {
				output.Dim("  Log a trade today to start a new streak.")
			}
			planned := user.Template.PlannedTradingDays
			if len(planned) > 0 && isPlannedToday(planned, time.Now()) {
				output.Info("  Today is one of your planned trading days.")
			}
			return nil
		},
	}
}

func isPlannedToday(planned []int, now time.Time) bool {
	today := int(now.Weekday())
	for _, d := range planned {
		if d == today {
			return true
		}
	}
	return false
}
