package models

// MaxCoins is the cap on the configured asset list.
const MaxCoins = 30

// CustomField represents one confluence definition in the template.
// The id is a stable checklist key; toggling active only hides the
// field from future entry forms, it never deletes historical data.
type CustomField struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Template holds the user's configurable taxonomy.
type Template struct {
	Coins              []string      `json:"coins"`
	Sessions           []string      `json:"sessions"`
	CustomConfluences  []CustomField `json:"customConfluences"`
	DashboardWidgets   []string      `json:"dashboardWidgets"`
	PlannedTradingDays []int         `json:"plannedTradingDays"` // 0=Sunday..6=Saturday
}

// User represents the single local profile.
type User struct {
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	Mobile            string   `json:"mobile"`
	Timezone          string   `json:"timezone"`
	DailyHourLimit    float64  `json:"dailyHourLimit"`
	LastActiveDay     string   `json:"lastActiveDay,omitempty"`
	TodayMinutes      int      `json:"todayMinutes"`
	StreakCount       int      `json:"streakCount"`
	MaxStreak         int      `json:"maxStreak"`
	MilestonesReached []string `json:"milestonesReached"`
	Template          Template `json:"template"`
	AIEnabled         bool     `json:"aiEnabled"`
}

// Dashboard widget identifiers.
const (
	WidgetBurnout         = "burnout"
	WidgetStreaks         = "streaks"
	WidgetKPIs            = "kpis"
	WidgetConsistency     = "consistency"
	WidgetInsightsPreview = "insights_preview"
)

// DefaultPlannedDays is Tuesday through Thursday with Sunday as day 0.
func DefaultPlannedDays() []int {
	return []int{2, 3, 4}
}

// DefaultTemplate returns the template installed at signup and by the
// load-time repair policy.
func DefaultTemplate() Template {
	return Template{
		Coins:    []string{"BTC", "ETH", "SOL", "XAU"},
		Sessions: []string{"London", "NY", "Asia"},
		CustomConfluences: []CustomField{
			{ID: "premiumDiscount", Label: "Premium / Discount", Active: true},
			{ID: "liquiditySweep", Label: "Liquidity Sweep", Active: true},
			{ID: "mss", Label: "MSS (Market Structure Shift)", Active: true},
			{ID: "fvg", Label: "FVG (Fair Value Gap)", Active: true},
			{ID: "orderBlock", Label: "Order Block (OB)", Active: true},
			{ID: "structureBroken", Label: "BOS (Break of Structure)", Active: true},
			{ID: "smtDivergence", Label: "SMT Divergence", Active: true},
		},
		DashboardWidgets: []string{
			WidgetBurnout,
			WidgetStreaks,
			WidgetKPIs,
			WidgetConsistency,
			WidgetInsightsPreview,
		},
		PlannedTradingDays: DefaultPlannedDays(),
	}
}

// ActiveConfluences returns the confluence fields currently shown on
// entry forms.
func (t Template) ActiveConfluences() []CustomField {
	var out []CustomField
	for _, c := range t.CustomConfluences {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// ConfluenceLabel resolves a checklist key to its display label.
// Unknown or retired ids fall back to the raw id so historical trades
// still render.
func (t Template) ConfluenceLabel(id string) string {
	for _, c := range t.CustomConfluences {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// NewChecklist returns a checklist with every active confluence off.
func (t Template) NewChecklist() Checklist {
	cl := make(Checklist, len(t.CustomConfluences))
	for _, c := range t.CustomConfluences {
		if c.Active {
			cl[c.ID] = false
		}
	}
	return cl
}
