// Package models defines the core data types for the journal.
package models

import (
	"math"
	"time"
)

// DateLayout is the calendar-day format used for trade dates and the
// streak walk. Trades carry a day, not an instant.
const DateLayout = "2006-01-02"

// Bias represents the higher-timeframe directional bias.
type Bias string

const (
	BiasBull    Bias = "Bull"
	BiasBear    Bias = "Bear"
	BiasNeutral Bias = "Neutral"
)

// TradeType represents the direction of a trade.
type TradeType string

const (
	TypeLong  TradeType = "Long"
	TypeShort TradeType = "Short"
)

// Result represents the outcome of a trade.
type Result string

const (
	ResultWin  Result = "Win"
	ResultLoss Result = "Loss"
	ResultBE   Result = "Break-even"
)

// Timeframe labels used by the entry form defaults.
const (
	TimeframeM1    = "1m"
	TimeframeM5    = "5m"
	TimeframeM15   = "15m"
	TimeframeH1    = "1H"
	TimeframeH4    = "4H"
	TimeframeDaily = "Daily"
)

// Checklist maps a confluence id to whether the trade satisfied it.
// Keys are the union of built-in SMC concepts and user-defined custom
// fields; unknown or retired ids on stored trades are preserved.
type Checklist map[string]bool

// Trade represents one logged backtest entry.
type Trade struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Coin          string    `json:"coin"`
	Session       string    `json:"session"`
	Timeframe     string    `json:"timeframe"`
	HTFTimeframe  string    `json:"htfTimeframe"`
	Bias          Bias      `json:"bias"`
	Type          TradeType `json:"type"`
	EntryPrice    float64   `json:"entryPrice"`
	StopLoss      float64   `json:"stopLoss"`
	TakeProfit    float64   `json:"takeProfit"`
	RR            float64   `json:"rr"`
	Setup         Checklist `json:"setup"`
	Result        Result    `json:"result"`
	ExitPrice     float64   `json:"exitPrice"`
	PnLPercent    float64   `json:"pnlPercent"`
	Notes         string    `json:"notes"` // opaque markup, never parsed
	LessonSnippet string    `json:"lessonSnippet,omitempty"`
	Screenshot    string    `json:"screenshot,omitempty"`
	DayOfWeek     string    `json:"dayOfWeek"`
	IsPriorityDay bool      `json:"isPriorityDay"`
}

// LessonSnippets is the fixed list of short lesson tags offered on the
// entry form.
var LessonSnippets = []string{
	"Wait for 15m MSS before entry",
	"Check Daily HTF PD Array",
	"Avoid trading late NY session",
	"Liquidity not swept yet",
	"Pure A+ setup followed rules",
	"Forced trade in consolidation",
}

// priorityDays is the fixed policy set baked into trade computation.
// Intentionally independent of the user's configurable planned days.
var priorityDays = map[time.Weekday]bool{
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
}

// ComputeRR derives the risk:reward ratio from entry, stop and target.
// Returns fallback when any price is zero or the risk distance is zero.
func ComputeRR(entry, stop, target, fallback float64) float64 {
	if entry == 0 || stop == 0 || target == 0 {
		return fallback
	}
	risk := math.Abs(entry - stop)
	if risk == 0 {
		return fallback
	}
	reward := math.Abs(target - entry)
	return math.Round(reward/risk*100) / 100
}

// Stamp fills the computed-at-save fields from the trade's date:
// the day-of-week label and the fixed priority-day flag.
func (t *Trade) Stamp() {
	day, err := time.ParseInLocation(DateLayout, t.Date, time.Local)
	if err != nil {
		t.DayOfWeek = ""
		t.IsPriorityDay = false
		return
	}
	t.DayOfWeek = day.Weekday().String()
	t.IsPriorityDay = priorityDays[day.Weekday()]
}

// SetupStrength counts the confluences marked true.
func (t *Trade) SetupStrength() int {
	n := 0
	for _, on := range t.Setup {
		if on {
			n++
		}
	}
	return n
}
