// Package analytics computes derived performance statistics from the
// trade collection. Every function here is pure: results are
// recomputed from the full collection on each call, nothing is cached.
package analytics

import (
	"sort"

	"smc-journal/internal/models"
)

// Summary holds the headline aggregates over the whole collection.
type Summary struct {
	TotalTrades int       `json:"totalTrades"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	BreakEvens  int       `json:"breakEvens"`
	WinRate     float64   `json:"winRate"`
	TotalPnL    float64   `json:"totalPnl"`
	AvgRR       float64   `json:"avgRr"`
	EquityCurve []float64 `json:"equityCurve"`
}

// Aggregate folds the trade collection into a Summary. Returns nil for
// an empty collection so callers can show an empty state.
//
// The equity curve is the running sum of P&L percent with trades
// ordered by ascending date; trades sharing a date keep their
// collection order.
func Aggregate(trades []models.Trade) *Summary {
	if len(trades) == 0 {
		return nil
	}

	s := &Summary{TotalTrades: len(trades)}

	var rrSum float64
	for _, t := range trades {
		switch t.Result {
		case models.ResultWin:
			s.Wins++
		case models.ResultLoss:
			s.Losses++
		default:
			s.BreakEvens++
		}
		s.TotalPnL += t.PnLPercent
		rrSum += t.RR
	}

	s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	s.AvgRR = rrSum / float64(s.TotalTrades)
	s.EquityCurve = equityCurve(trades)

	return s
}

// equityCurve returns cumulative P&L percent over the date-sorted
// collection. Dates are YYYY-MM-DD strings, so lexicographic order is
// chronological order.
func equityCurve(trades []models.Trade) []float64 {
	ordered := make([]models.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	curve := make([]float64, len(ordered))
	running := 0.0
	for i, t := range ordered {
		running += t.PnLPercent
		curve[i] = running
	}
	return curve
}
