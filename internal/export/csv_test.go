package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smc-journal/internal/models"
)

func TestWrite_HeaderAndColumnOrder(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, []models.Trade{
		{Date: "2024-03-05", Coin: "BTC", Session: "London", Type: models.TypeLong, Result: models.ResultWin, RR: 2.5, PnLPercent: 1.2},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Coin,Session,Type,Result,RR,PnL%,Lesson,Notes", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-05,BTC,London,Long,Win,"))
}

func TestWrite_SanitizesNotes(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, []models.Trade{
		{
			Date:   "2024-03-05",
			Coin:   "BTC",
			Notes:  "<p>swept lows, then <b>reversed</b></p>",
			Result: models.ResultWin,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<p>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "swept lows; then reversed")
}

func TestWrite_RowCountMatchesInput(t *testing.T) {
	// The caller passes the filtered collection; the row count must
	// match it, not the full journal.
	filtered := []models.Trade{
		{Date: "2024-03-05", Coin: "BTC"},
		{Date: "2024-03-06", Coin: "BTC"},
	}

	var buf strings.Builder
	require.NoError(t, Write(&buf, filtered))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(filtered)+1)
}

func TestWrite_EmptyCollection(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Write(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "Date,Coin,Session,Type,Result,RR,PnL%,Lesson,Notes", lines[0])
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "smc_log_2024-03-05.csv", DefaultFileName(now))
}
