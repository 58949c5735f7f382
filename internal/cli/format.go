// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"strings"
	"time"

	"smc-journal/internal/models"
)

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatWinRate formats a win rate without sign.
func FormatWinRate(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatPrice formats a price, trimming trailing zeros.
func FormatPrice(price float64) string {
	if price == 0 {
		return "-"
	}
	s := fmt.Sprintf("%.8f", price)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// FormatRiskReward formats a risk-reward ratio.
func FormatRiskReward(rr float64) string {
	if rr == 0 {
		return "-"
	}
	return fmt.Sprintf("1:%.2f", rr)
}

// FormatDate formats a stored trade date for display.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02-Jan-2006")
}

// FormatDay formats a weekday index (Sunday = 0).
func FormatDay(day int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if day < 0 || day >= len(days) {
		return "?"
	}
	return days[day]
}

// FormatDays formats a set of weekday indices.
func FormatDays(days []int) string {
	if len(days) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, FormatDay(d))
	}
	return strings.Join(parts, ", ")
}

// FormatChecklist summarizes ticked confluences out of the active set.
func FormatChecklist(checklist models.Checklist, tpl models.Template) string {
	active := tpl.ActiveConfluences()
	ticked := 0
	for _, f := range active {
		if checklist[f.ID] {
			ticked++
		}
	}
	return fmt.Sprintf("%d/%d", ticked, len(active))
}

// TruncateString truncates a string to maxLen with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string to the right.
func PadRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// PadLeft pads a string to the left.
func PadLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}
