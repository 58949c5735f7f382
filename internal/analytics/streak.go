package analytics

import (
	"time"

	"smc-journal/internal/models"
)

// Streak walks backward from today one calendar day at a time and
// counts consecutive days with at least one trade, stopping at the
// first gap. Multiple trades on one day count once. A trade dated
// today counts; so does a future-dated trade only if it matches the
// walk's expected date string exactly, which the backward walk never
// reaches, so future dates are effectively ignored.
//
// Both trade dates and the anchor use the local calendar day in
// models.DateLayout form.
func Streak(trades []models.Trade, today time.Time) int {
	if len(trades) == 0 {
		return 0
	}

	days := make(map[string]bool, len(trades))
	for _, t := range trades {
		days[t.Date] = true
	}

	streak := 0
	cursor := today
	for days[cursor.Format(models.DateLayout)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
