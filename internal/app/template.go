package app

import (
	"context"
	"strings"

	apperrors "smc-journal/internal/errors"
	"smc-journal/internal/models"
)

// Template mutation operations. Each edits the embedded template and
// persists the profile; none of them touches historical trade data.

// AddCoin appends an uppercased symbol to the asset list.
func (c *Controller) AddCoin(ctx context.Context, coin string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	coin = strings.ToUpper(strings.TrimSpace(coin))
	if coin == "" {
		return apperrors.NewValidationError("coin", coin, "must not be empty")
	}
	tpl := &c.user.Template
	if len(tpl.Coins) >= models.MaxCoins {
		return apperrors.NewValidationError("coin", coin, "asset list is full")
	}
	if containsString(tpl.Coins, coin) {
		return apperrors.NewValidationError("coin", coin, "already in asset list")
	}
	tpl.Coins = append(tpl.Coins, coin)
	c.persistUser(ctx)
	return nil
}

// RemoveCoin drops a symbol from the asset list. Historical trades
// keep their stored symbol.
func (c *Controller) RemoveCoin(ctx context.Context, coin string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	coin = strings.ToUpper(strings.TrimSpace(coin))
	tpl := &c.user.Template
	for i, existing := range tpl.Coins {
		if existing == coin {
			tpl.Coins = append(tpl.Coins[:i], tpl.Coins[i+1:]...)
			c.persistUser(ctx)
			return nil
		}
	}
	return apperrors.NewValidationError("coin", coin, "not in asset list")
}

// AddSession appends a unique session label.
func (c *Controller) AddSession(ctx context.Context, session string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	session = strings.TrimSpace(session)
	if session == "" {
		return apperrors.NewValidationError("session", session, "must not be empty")
	}
	tpl := &c.user.Template
	if containsString(tpl.Sessions, session) {
		return apperrors.NewValidationError("session", session, "already in session list")
	}
	tpl.Sessions = append(tpl.Sessions, session)
	c.persistUser(ctx)
	return nil
}

// EditSession renames a session in place, mapped by equality so the
// position is preserved. Already-logged trades keep their stored
// session string.
func (c *Controller) EditSession(ctx context.Context, old, updated string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	updated = strings.TrimSpace(updated)
	if updated == "" {
		return apperrors.NewValidationError("session", updated, "must not be empty")
	}
	tpl := &c.user.Template
	for i, existing := range tpl.Sessions {
		if existing == old {
			tpl.Sessions[i] = updated
			c.persistUser(ctx)
			return nil
		}
	}
	return apperrors.NewValidationError("session", old, "not in session list")
}

// RemoveSession drops a session label from the template.
func (c *Controller) RemoveSession(ctx context.Context, session string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	tpl := &c.user.Template
	for i, existing := range tpl.Sessions {
		if existing == session {
			tpl.Sessions = append(tpl.Sessions[:i], tpl.Sessions[i+1:]...)
			c.persistUser(ctx)
			return nil
		}
	}
	return apperrors.NewValidationError("session", session, "not in session list")
}

// ToggleConfluence flips a confluence field's active flag. Historical
// trade data recorded against the id is untouched; inactive fields
// are only hidden from future entry forms.
func (c *Controller) ToggleConfluence(ctx context.Context, id string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	tpl := &c.user.Template
	for i := range tpl.CustomConfluences {
		if tpl.CustomConfluences[i].ID == id {
			tpl.CustomConfluences[i].Active = !tpl.CustomConfluences[i].Active
			c.persistUser(ctx)
			return nil
		}
	}
	return apperrors.NewValidationError("confluence", id, "unknown confluence id")
}

// AddConfluence registers a custom checklist field. Ids must be
// unique and stable since they are used as checklist keys.
func (c *Controller) AddConfluence(ctx context.Context, id, label string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.NewValidationError("confluence", id, "id must not be empty")
	}
	tpl := &c.user.Template
	for _, existing := range tpl.CustomConfluences {
		if existing.ID == id {
			return apperrors.NewValidationError("confluence", id, "id already exists")
		}
	}
	if label == "" {
		label = id
	}
	tpl.CustomConfluences = append(tpl.CustomConfluences, models.CustomField{
		ID:     id,
		Label:  label,
		Active: true,
	})
	c.persistUser(ctx)
	return nil
}

// SetWidgets replaces the dashboard widget order.
func (c *Controller) SetWidgets(ctx context.Context, widgets []string) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	c.user.Template.DashboardWidgets = widgets
	c.persistUser(ctx)
	return nil
}

// SetPlannedDays replaces the planned trading days. Indices are
// weekdays with Sunday as 0. This set is independent of the fixed
// priority-day policy stamped onto trades.
func (c *Controller) SetPlannedDays(ctx context.Context, days []int) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	seen := make(map[int]bool)
	var cleaned []int
	for _, d := range days {
		if d < 0 || d > 6 {
			return apperrors.NewValidationError("day", d, "weekday index must be 0-6")
		}
		if !seen[d] {
			seen[d] = true
			cleaned = append(cleaned, d)
		}
	}
	c.user.Template.PlannedTradingDays = cleaned
	c.persistUser(ctx)
	return nil
}

// TogglePlannedDay adds or removes a single planned day.
func (c *Controller) TogglePlannedDay(ctx context.Context, day int) error {
	if c.user == nil {
		return apperrors.ErrNoProfile
	}
	if day < 0 || day > 6 {
		return apperrors.NewValidationError("day", day, "weekday index must be 0-6")
	}
	tpl := &c.user.Template
	for i, d := range tpl.PlannedTradingDays {
		if d == day {
			tpl.PlannedTradingDays = append(tpl.PlannedTradingDays[:i], tpl.PlannedTradingDays[i+1:]...)
			c.persistUser(ctx)
			return nil
		}
	}
	tpl.PlannedTradingDays = append(tpl.PlannedTradingDays, day)
	c.persistUser(ctx)
	return nil
}
