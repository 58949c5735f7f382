package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smc-journal/internal/models"
)

func TestByAsset_GroupsAndWinRates(t *testing.T) {
	trades := []models.Trade{
		{Coin: "BTC", Result: models.ResultWin, PnLPercent: 2},
		{Coin: "ETH", Result: models.ResultLoss, PnLPercent: -1},
		{Coin: "BTC", Result: models.ResultLoss, PnLPercent: -0.5},
	}

	groups := ByAsset(trades)
	require.Len(t, groups, 2)

	// First-seen order.
	assert.Equal(t, "BTC", groups[0].Name)
	assert.Equal(t, 2, groups[0].Trades)
	assert.Equal(t, 1, groups[0].Wins)
	assert.InDelta(t, 1.5, groups[0].PnL, 1e-9)
	assert.InDelta(t, 50.0, groups[0].WinRate(), 1e-9)

	assert.Equal(t, "ETH", groups[1].Name)
	assert.InDelta(t, 0.0, groups[1].WinRate(), 1e-9)
}

func TestByConfluence_OverlappingTotals(t *testing.T) {
	// One trade with two true flags contributes to both groups, so
	// confluence totals exceed the trade count.
	trades := []models.Trade{
		{Setup: models.Checklist{"fvg": true, "mss": true}, Result: models.ResultWin, PnLPercent: 3},
		{Setup: models.Checklist{"fvg": true, "orderBlock": false}, Result: models.ResultLoss, PnLPercent: -1},
	}

	groups := ByConfluence(trades)
	require.Len(t, groups, 2)

	total := 0
	for _, g := range groups {
		total += g.Trades
	}
	assert.Equal(t, 3, total)
	assert.Greater(t, total, len(trades))
}

func TestByConfluence_FalseFlagsExcluded(t *testing.T) {
	trades := []models.Trade{
		{Setup: models.Checklist{"fvg": false}, Result: models.ResultWin, PnLPercent: 1},
	}
	assert.Empty(t, ByConfluence(trades))
}

func TestByConfluence_SortedByDescendingPnL(t *testing.T) {
	trades := []models.Trade{
		{Setup: models.Checklist{"mss": true}, Result: models.ResultLoss, PnLPercent: -2},
		{Setup: models.Checklist{"fvg": true}, Result: models.ResultWin, PnLPercent: 5},
		{Setup: models.Checklist{"orderBlock": true}, Result: models.ResultWin, PnLPercent: 1},
	}

	groups := ByConfluence(trades)
	require.Len(t, groups, 3)
	assert.Equal(t, "fvg", groups[0].Name)
	assert.Equal(t, "orderBlock", groups[1].Name)
	assert.Equal(t, "mss", groups[2].Name)
}

func TestByConfluence_WinRateIdentity(t *testing.T) {
	trades := []models.Trade{
		{Setup: models.Checklist{"fvg": true}, Result: models.ResultWin, PnLPercent: 2},
		{Setup: models.Checklist{"fvg": true}, Result: models.ResultLoss, PnLPercent: -1},
		{Setup: models.Checklist{"fvg": true}, Result: models.ResultWin, PnLPercent: 1},
		{Setup: models.Checklist{"mss": true}, Result: models.ResultLoss, PnLPercent: -1},
	}

	groups := ByConfluence(trades)
	var fvg *GroupStats
	for i := range groups {
		if groups[i].Name == "fvg" {
			fvg = &groups[i]
		}
	}
	require.NotNil(t, fvg)
	assert.Equal(t, 3, fvg.Trades)
	assert.Equal(t, 2, fvg.Wins)
	assert.InDelta(t, 200.0/3.0, fvg.WinRate(), 1e-9)
}

func TestBySession_RetiredLabelsKept(t *testing.T) {
	// Sessions removed from the template still group by their stored
	// string.
	trades := []models.Trade{
		{Session: "London", Result: models.ResultWin},
		{Session: "Frankfurt", Result: models.ResultLoss},
	}

	groups := BySession(trades)
	require.Len(t, groups, 2)
	assert.Equal(t, "London", groups[0].Name)
	assert.Equal(t, "Frankfurt", groups[1].Name)
}
