// Package app owns the (profile, trade-collection) application state.
//
// All mutation goes through the Controller: it applies the change in
// memory, persists the affected object wholesale and recomputes the
// streak side effect. Persistence is fire-and-forget: a failed write
// is logged and the in-memory state stays authoritative until the
// next load. There is one logical writer, so no locking.
package app

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"smc-journal/internal/analytics"
	apperrors "smc-journal/internal/errors"
	"smc-journal/internal/logging"
	"smc-journal/internal/models"
	"smc-journal/internal/store"
)

// Milestone streak thresholds, recorded once and never removed.
var milestoneDays = []struct {
	days int
	name string
}{
	{3, "streak_3"},
	{7, "streak_7"},
	{30, "streak_30"},
}

// Controller is the single owner of the journal's mutable state.
type Controller struct {
	store  store.StateStore
	logger zerolog.Logger
	now    func() time.Time

	user    *models.User
	trades  []models.Trade
	entered bool
}

// NewController creates a controller over the given store.
func NewController(st store.StateStore, logger zerolog.Logger) *Controller {
	return &Controller{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// User returns the loaded profile, or nil before signup.
func (c *Controller) User() *models.User {
	return c.user
}

// Trades returns the trade collection, newest-logged-first.
func (c *Controller) Trades() []models.Trade {
	return c.trades
}

// HasEntered reports whether the landing screen was passed.
func (c *Controller) HasEntered() bool {
	return c.entered
}

// Load reads the three state entries and applies the load-time repair
// policy. Malformed entries are logged and treated as absent, which
// degrades to the signup flow rather than failing.
func (c *Controller) Load(ctx context.Context) error {
	c.entered = c.loadEntered(ctx)
	c.trades = c.loadTrades(ctx)
	c.user = c.loadUser(ctx)

	if c.user != nil {
		c.repairProfile(ctx)
	}
	return nil
}

func (c *Controller) loadEntered(ctx context.Context) bool {
	raw, err := c.store.Get(ctx, store.KeyEntered)
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

func (c *Controller) loadTrades(ctx context.Context) []models.Trade {
	raw, err := c.store.Get(ctx, store.KeyTrades)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrKeyNotFound) {
			c.logger.Warn().Err(err).Msg("Failed to read trades, starting empty")
		}
		return nil
	}
	var trades []models.Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed trade state, starting empty")
		return nil
	}
	return trades
}

func (c *Controller) loadUser(ctx context.Context) *models.User {
	raw, err := c.store.Get(ctx, store.KeyUser)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrKeyNotFound) {
			c.logger.Warn().Err(err).Msg("Failed to read profile")
		}
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed profile state, falling back to signup")
		return nil
	}
	return &u
}

// repairProfile applies the load-time repair policy: daily-minutes
// reset on a new day, default template when absent, default planned
// days when absent.
func (c *Controller) repairProfile(ctx context.Context) {
	changed := false

	today := c.today()
	if c.user.LastActiveDay != today {
		c.user.TodayMinutes = 0
		c.user.LastActiveDay = today
		changed = true
	}

	if len(c.user.Template.CustomConfluences) == 0 && len(c.user.Template.Coins) == 0 {
		c.user.Template = models.DefaultTemplate()
		changed = true
	}

	if c.user.Template.PlannedTradingDays == nil {
		c.user.Template.PlannedTradingDays = models.DefaultPlannedDays()
		changed = true
	}

	if changed {
		c.persistUser(ctx)
	}
}

// Signup creates a fresh profile, overwriting any previous state.
func (c *Controller) Signup(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return apperrors.NewValidationError("username", username, "must be at least 3 characters")
	}

	c.user = &models.User{
		Username:          username,
		Timezone:          "UTC",
		DailyHourLimit:    3,
		LastActiveDay:     c.today(),
		MilestonesReached: []string{},
		Template:          models.DefaultTemplate(),
		AIEnabled:         true,
	}
	c.persistUser(ctx)
	return nil
}

// EnterApp marks the landing screen as passed.
func (c *Controller) EnterApp(ctx context.Context) {
	c.entered = true
	if err := c.store.Put(ctx, store.KeyEntered, []byte("true")); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to persist entered flag")
	}
}

// Logout clears all persisted state and the in-memory pair.
func (c *Controller) Logout(ctx context.Context) error {
	for _, key := range []string{store.KeyTrades, store.KeyUser, store.KeyEntered} {
		if err := c.store.Delete(ctx, key); err != nil {
			return apperrors.Wrapf(err, "clearing %s", key)
		}
	}
	c.user = nil
	c.trades = nil
	c.entered = false
	return nil
}

// AddTrade assigns a new id, stamps the computed fields and prepends
// the trade to the collection.
func (c *Controller) AddTrade(ctx context.Context, t models.Trade) (models.Trade, error) {
	if c.user == nil {
		return t, apperrors.ErrNoProfile
	}
	t.ID = uuid.NewString()
	t.Stamp()

	c.trades = append([]models.Trade{t}, c.trades...)
	c.afterTradeChange(ctx)

	logging.LogTradeSaved(c.logger, t.ID, t.Coin, string(t.Result), t.PnLPercent)
	return t, nil
}

// UpdateTrade replaces the trade with the same id in place. The id is
// preserved; every other field is replaceable.
func (c *Controller) UpdateTrade(ctx context.Context, t models.Trade) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	for i := range c.trades {
		if c.trades[i].ID == t.ID {
			t.Stamp()
			c.trades[i] = t
			c.afterTradeChange(ctx)
			logging.LogTradeSaved(c.logger, t.ID, t.Coin, string(t.Result), t.PnLPercent)
			return nil
		}
	}
	return apperrors.ErrTradeNotFound
}

// DeleteTrade removes the trade by id. Destructive, no soft delete.
func (c *Controller) DeleteTrade(ctx context.Context, id string) error {
	for i := range c.trades {
		if c.trades[i].ID == id {
			c.trades = append(c.trades[:i], c.trades[i+1:]...)
			c.afterTradeChange(ctx)
			return nil
		}
	}
	return apperrors.ErrTradeNotFound
}

// TradeByID returns the trade with the given id.
func (c *Controller) TradeByID(id string) (models.Trade, error) {
	for _, t := range c.trades {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trade{}, apperrors.ErrTradeNotFound
}

// SearchTrades filters the collection by a case-insensitive query over
// asset symbol, notes and lesson snippet. An empty query returns the
// whole collection.
func (c *Controller) SearchTrades(query string) []models.Trade {
	if query == "" {
		return c.trades
	}
	q := strings.ToLower(query)
	var out []models.Trade
	for _, t := range c.trades {
		if strings.Contains(strings.ToLower(t.Coin), q) ||
			strings.Contains(strings.ToLower(t.Notes), q) ||
			strings.Contains(strings.ToLower(t.LessonSnippet), q) {
			out = append(out, t)
		}
	}
	return out
}

// afterTradeChange persists the collection and recomputes the streak
// side effect into the profile.
func (c *Controller) afterTradeChange(ctx context.Context) {
	c.persistTrades(ctx)
	c.refreshStreak(ctx)
}

// refreshStreak recomputes the consecutive-day streak and the
// monotone maximum, recording milestones the first time each
// threshold is crossed.
func (c *Controller) refreshStreak(ctx context.Context) {
	if c.user == nil {
		return
	}
	streak := analytics.Streak(c.trades, c.now())
	c.user.StreakCount = streak
	if streak > c.user.MaxStreak {
		c.user.MaxStreak = streak
	}
	for _, m := range milestoneDays {
		if streak >= m.days && !containsString(c.user.MilestonesReached, m.name) {
			c.user.MilestonesReached = append(c.user.MilestonesReached, m.name)
		}
	}
	logging.LogStreak(c.logger, c.user.StreakCount, c.user.MaxStreak)
	c.persistUser(ctx)
}

// TickMinute adds one minute of focus time to today's budget, rolling
// the day over first when the stored day is stale.
func (c *Controller) TickMinute(ctx context.Context) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	today := c.today()
	if c.user.LastActiveDay != today {
		c.user.TodayMinutes = 0
		c.user.LastActiveDay = today
	}
	c.user.TodayMinutes++
	c.persistUser(ctx)
	return nil
}

// UpdateProfile replaces the editable identity fields.
func (c *Controller) UpdateProfile(ctx context.Context, email, mobile, timezone string, dailyHourLimit float64) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	c.user.Email = email
	c.user.Mobile = mobile
	c.user.Timezone = timezone
	if dailyHourLimit > 0 {
		c.user.DailyHourLimit = dailyHourLimit
	}
	c.persistUser(ctx)
	return nil
}

func (c *Controller) today() string {
	return c.now().Format(models.DateLayout)
}

func (c *Controller) persistTrades(ctx context.Context) {
	raw, err := json.Marshal(c.trades)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to encode trades")
		return
	}
	if err := c.store.Put(ctx, store.KeyTrades, raw); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to persist trades")
	}
}

func (c *Controller) persistUser(ctx context.Context) {
	if c.user == nil {
		return
	}
	raw, err := json.Marshal(c.user)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to encode profile")
		return
	}
	if err := c.store.Put(ctx, store.KeyUser, raw); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to persist profile")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
