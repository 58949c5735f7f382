package analytics

import (
	"sort"

	"smc-journal/internal/models"
)

// GroupStats accumulates per-group trade count, win count and P&L sum.
type GroupStats struct {
	Name   string  `json:"name"`
	Trades int     `json:"trades"`
	Wins   int     `json:"wins"`
	PnL    float64 `json:"pnl"`
}

// WinRate returns the group win percentage, zero when the group is
// empty.
func (g GroupStats) WinRate() float64 {
	if g.Trades == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Trades) * 100
}

// accumulator builds groups in first-seen order.
type accumulator struct {
	groups map[string]*GroupStats
	order  []string
}

func newAccumulator() *accumulator {
	return &accumulator{groups: make(map[string]*GroupStats)}
}

func (a *accumulator) add(name string, t models.Trade) {
	g, ok := a.groups[name]
	if !ok {
		g = &GroupStats{Name: name}
		a.groups[name] = g
		a.order = append(a.order, name)
	}
	g.Trades++
	g.PnL += t.PnLPercent
	if t.Result == models.ResultWin {
		g.Wins++
	}
}

func (a *accumulator) result() []GroupStats {
	out := make([]GroupStats, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.groups[name])
	}
	return out
}

// ByAsset groups trades by asset symbol, in first-seen order.
func ByAsset(trades []models.Trade) []GroupStats {
	acc := newAccumulator()
	for _, t := range trades {
		acc.add(t.Coin, t)
	}
	return acc.result()
}

// BySession groups trades by session label, in first-seen order.
// Historical trades keep their stored session string even when the
// label was later removed from the template.
func BySession(trades []models.Trade) []GroupStats {
	acc := newAccumulator()
	for _, t := range trades {
		acc.add(t.Session, t)
	}
	return acc.result()
}

// ByConfluence groups trades by checklist id, counting a trade once
// for every id it has marked true. Group totals therefore overlap and
// do not partition the collection. The result is sorted by descending
// P&L sum; ties keep first-seen order.
//
// Within a single trade the checklist keys are visited in sorted
// order, which keeps first-seen group order deterministic despite map
// iteration.
func ByConfluence(trades []models.Trade) []GroupStats {
	acc := newAccumulator()
	for _, t := range trades {
		for _, id := range sortedActiveKeys(t.Setup) {
			acc.add(id, t)
		}
	}
	out := acc.result()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnL > out[j].PnL
	})
	return out
}

// confluenceGroups is ByConfluence without the presentation sort,
// preserving first-seen order for the insight tie-break.
func confluenceGroups(trades []models.Trade) []GroupStats {
	acc := newAccumulator()
	for _, t := range trades {
		for _, id := range sortedActiveKeys(t.Setup) {
			acc.add(id, t)
		}
	}
	return acc.result()
}

func sortedActiveKeys(cl models.Checklist) []string {
	keys := make([]string, 0, len(cl))
	for id, on := range cl {
		if on {
			keys = append(keys, id)
		}
	}
	sort.Strings(keys)
	return keys
}
