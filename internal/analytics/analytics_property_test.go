package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"smc-journal/internal/models"
)

var (
	propSessions    = []string{"London", "NY", "Asia"}
	propCoins       = []string{"BTC", "ETH", "SOL", "XAU"}
	propConfluences = []string{"premiumDiscount", "liquiditySweep", "mss", "fvg", "orderBlock"}
	propResults     = []models.Result{models.ResultWin, models.ResultLoss, models.ResultBE}
)

// tradeFromSeed builds a deterministic trade from generated integers,
// so shrinking stays meaningful.
func tradeFromSeed(seed, dayOffset int, pnl, rr float64) models.Trade {
	setup := models.Checklist{}
	for i, id := range propConfluences {
		setup[id] = seed>>uint(i)&1 == 1
	}
	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	return models.Trade{
		Date:       anchor.AddDate(0, 0, dayOffset).Format(models.DateLayout),
		Coin:       propCoins[seed%len(propCoins)],
		Session:    propSessions[seed%len(propSessions)],
		Result:     propResults[seed%len(propResults)],
		PnLPercent: pnl,
		RR:         rr,
		Setup:      setup,
	}
}

func genTrades(minLen int) gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(
		gen.IntRange(0, 1<<10),
		gen.IntRange(-30, 30),
		gen.Float64Range(-25, 25),
		gen.Float64Range(0, 10),
	).Map(func(vals []interface{}) models.Trade {
		return tradeFromSeed(vals[0].(int), vals[1].(int), vals[2].(float64), vals[3].(float64))
	})).SuchThat(func(ts []models.Trade) bool {
		return len(ts) >= minLen
	})
}

// Property: result counts partition the collection and the win rate
// stays inside [0,100].
func TestProperty_AggregateCountsPartition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("wins+losses+breakEvens == total and winRate in [0,100]", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Aggregate(trades)
			if s == nil {
				return len(trades) == 0
			}
			if s.Wins+s.Losses+s.BreakEvens != s.TotalTrades {
				return false
			}
			return s.WinRate >= 0 && s.WinRate <= 100
		},
		genTrades(0),
	))

	properties.TestingRun(t)
}

// Property: the equity curve has one point per trade and its final
// value equals the P&L sum no matter how the input is ordered.
func TestProperty_EquityCurveFinalValue(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("curve length matches and final point equals P&L sum", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Aggregate(trades)
			if s == nil {
				return len(trades) == 0
			}
			if len(s.EquityCurve) != len(trades) {
				return false
			}
			sum := 0.0
			for _, tr := range trades {
				sum += tr.PnLPercent
			}
			return math.Abs(s.EquityCurve[len(s.EquityCurve)-1]-sum) < 1e-6
		},
		genTrades(1),
	))

	properties.Property("curve is order-independent", prop.ForAll(
		func(trades []models.Trade) bool {
			reversed := make([]models.Trade, len(trades))
			for i, tr := range trades {
				reversed[len(trades)-1-i] = tr
			}
			a := Aggregate(trades)
			b := Aggregate(reversed)
			if a == nil || b == nil {
				return a == b
			}
			if len(a.EquityCurve) != len(b.EquityCurve) {
				return false
			}
			// Same-date trades may legitimately swap; the running
			// total at each date boundary and the final value agree.
			return math.Abs(a.EquityCurve[len(a.EquityCurve)-1]-b.EquityCurve[len(b.EquityCurve)-1]) < 1e-6
		},
		genTrades(1),
	))

	properties.TestingRun(t)
}

// Property: per-confluence win rate equals wins-with-flag over
// trades-with-flag, and overlapping flags can push group totals past
// the trade count.
func TestProperty_ConfluenceBreakdownIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("group stats match direct recount", prop.ForAll(
		func(trades []models.Trade) bool {
			for _, g := range ByConfluence(trades) {
				count, wins := 0, 0
				for _, tr := range trades {
					if tr.Setup[g.Name] {
						count++
						if tr.Result == models.ResultWin {
							wins++
						}
					}
				}
				if g.Trades != count || g.Wins != wins {
					return false
				}
				want := float64(wins) / float64(count) * 100
				if math.Abs(g.WinRate()-want) > 1e-9 {
					return false
				}
			}
			return true
		},
		genTrades(0),
	))

	properties.TestingRun(t)
}

// Property: the insight gate holds and the chosen win rate is the
// maximum across candidate groups.
func TestProperty_InsightSelection(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("below 5 trades yields no insight", prop.ForAll(
		func(trades []models.Trade) bool {
			if len(trades) >= MinInsightTrades {
				trades = trades[:MinInsightTrades-1]
			}
			return SelectInsights(trades) == nil
		},
		genTrades(0),
	))

	properties.Property("chosen session win rate is the maximum", prop.ForAll(
		func(trades []models.Trade) bool {
			ins := SelectInsights(trades)
			if ins == nil {
				return len(trades) < MinInsightTrades
			}
			best := 0.0
			for _, g := range BySession(trades) {
				if wr := g.WinRate(); wr > best {
					best = wr
				}
			}
			return math.Abs(ins.BestSession.WinRate()-best) < 1e-9
		},
		genTrades(MinInsightTrades),
	))

	properties.TestingRun(t)
}

// Property: the streak never exceeds the number of distinct trade
// dates and is zero without a trade on the anchor day.
func TestProperty_StreakBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	anchor := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	properties.Property("streak bounded by distinct dates", prop.ForAll(
		func(trades []models.Trade) bool {
			distinct := make(map[string]bool)
			for _, tr := range trades {
				distinct[tr.Date] = true
			}
			streak := Streak(trades, anchor)
			if streak < 0 || streak > len(distinct) {
				return false
			}
			if !distinct[anchor.Format(models.DateLayout)] {
				return streak == 0
			}
			return streak >= 1
		},
		genTrades(0),
	))

	properties.TestingRun(t)
}
