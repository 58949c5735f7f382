package analytics

import "smc-journal/internal/models"

// MinInsightTrades is the overall sample gate below which no insight
// is produced.
const MinInsightTrades = 5

// Insights holds the heuristic "best" picks. This is a fixed ranking
// policy over precomputed group statistics, not a statistical
// significance test: a group with a single winning trade can win at a
// 100% rate. That sensitivity is deliberate and covered by tests.
type Insights struct {
	BestSession    GroupStats `json:"bestSession"`
	BestConfluence GroupStats `json:"bestConfluence"`
}

// SelectInsights picks the session and confluence with the strictly
// highest win rate. Ties resolve to the first-encountered group, in
// collection order. Returns nil below the sample gate.
//
// A group is only selected when its win rate strictly exceeds zero;
// with no winning trades at all both picks stay empty.
func SelectInsights(trades []models.Trade) *Insights {
	if len(trades) < MinInsightTrades {
		return nil
	}

	return &Insights{
		BestSession:    pickBest(BySession(trades)),
		BestConfluence: pickBest(confluenceGroups(trades)),
	}
}

func pickBest(groups []GroupStats) GroupStats {
	var best GroupStats
	bestRate := 0.0
	for _, g := range groups {
		if wr := g.WinRate(); wr > bestRate {
			best = g
			bestRate = wr
		}
	}
	return best
}
