package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "smc-journal/internal/errors"
	"smc-journal/internal/models"
)

func TestAddCoin_UppercasesAndDeduplicates(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	require.NoError(t, c.AddCoin(ctx, "doge"))
	assert.Contains(t, c.User().Template.Coins, "DOGE")

	err := c.AddCoin(ctx, "DOGE")
	assert.True(t, apperrors.Is(err, apperrors.ErrInputValidation))
}

func TestAddCoin_EnforcesCap(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	for i := len(c.User().Template.Coins); i < models.MaxCoins; i++ {
		require.NoError(t, c.AddCoin(ctx, fmt.Sprintf("SYM%d", i)))
	}
	require.Len(t, c.User().Template.Coins, models.MaxCoins)

	err := c.AddCoin(ctx, "ONEMORE")
	assert.True(t, apperrors.Is(err, apperrors.ErrInputValidation))
}

func TestRemoveCoin(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	require.NoError(t, c.RemoveCoin(ctx, "btc"))
	assert.NotContains(t, c.User().Template.Coins, "BTC")

	err := c.RemoveCoin(ctx, "BTC")
	assert.Error(t, err)
}

func TestEditSession_PreservesPosition(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	sessions := c.User().Template.Sessions
	require.GreaterOrEqual(t, len(sessions), 2)
	second := sessions[1]

	require.NoError(t, c.EditSession(ctx, second, "Frankfurt"))
	assert.Equal(t, "Frankfurt", c.User().Template.Sessions[1])
}

func TestRemoveSession_KeepsHistoricalTrades(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	_, err := c.AddTrade(ctx, models.Trade{Date: "2024-03-05", Session: "London"})
	require.NoError(t, err)

	require.NoError(t, c.RemoveSession(ctx, "London"))
	assert.NotContains(t, c.User().Template.Sessions, "London")
	// The logged trade keeps its stored session string.
	assert.Equal(t, "London", c.Trades()[0].Session)
}

func TestToggleConfluence_HidesWithoutDeleting(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	_, err := c.AddTrade(ctx, models.Trade{
		Date:  "2024-03-05",
		Setup: models.Checklist{"fvg": true},
	})
	require.NoError(t, err)

	require.NoError(t, c.ToggleConfluence(ctx, "fvg"))

	var fvg *models.CustomField
	for i := range c.User().Template.CustomConfluences {
		if c.User().Template.CustomConfluences[i].ID == "fvg" {
			fvg = &c.User().Template.CustomConfluences[i]
		}
	}
	require.NotNil(t, fvg)
	assert.False(t, fvg.Active)
	// Historical checklist data survives the toggle.
	assert.True(t, c.Trades()[0].Setup["fvg"])
}

func TestAddConfluence_RequiresUniqueID(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	require.NoError(t, c.AddConfluence(ctx, "breaker", "Breaker Block"))
	assert.Equal(t, "Breaker Block", c.User().Template.ConfluenceLabel("breaker"))

	err := c.AddConfluence(ctx, "breaker", "Duplicate")
	assert.True(t, apperrors.Is(err, apperrors.ErrInputValidation))
}

func TestSetPlannedDays_ValidatesAndDeduplicates(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	require.NoError(t, c.SetPlannedDays(ctx, []int{1, 1, 5}))
	assert.Equal(t, []int{1, 5}, c.User().Template.PlannedTradingDays)

	err := c.SetPlannedDays(ctx, []int{7})
	assert.True(t, apperrors.Is(err, apperrors.ErrInputValidation))
}

func TestTogglePlannedDay(t *testing.T) {
	c, _ := signedUp(t)
	ctx := context.Background()

	require.NoError(t, c.SetPlannedDays(ctx, []int{2}))
	require.NoError(t, c.TogglePlannedDay(ctx, 5))
	assert.Equal(t, []int{2, 5}, c.User().Template.PlannedTradingDays)

	require.NoError(t, c.TogglePlannedDay(ctx, 2))
	assert.Equal(t, []int{5}, c.User().Template.PlannedTradingDays)
}
