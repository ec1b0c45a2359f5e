package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestTUITestMode(t *testing.T) {
	t.Run("test mode captures log entries", func(t *testing.T) {
		tui := NewWithOptions(testLogger(), true)

		assert.Empty(t, tui.CapturedLog())

		tui.AddLogEntry("=== Round 1 ===")
		tui.AddLogEntry("You bet $20")

		captured := tui.CapturedLog()
		require.Len(t, captured, 2)
		assert.Equal(t, "=== Round 1 ===", captured[0])
		assert.Equal(t, "You bet $20", captured[1])
	})

	t.Run("production mode does not capture logs", func(t *testing.T) {
		tui := New(testLogger())

		tui.AddLogEntry("Some log entry")

		assert.Nil(t, tui.CapturedLog())
	})

	t.Run("input injection works in test mode", func(t *testing.T) {
		tui := NewWithOptions(testLogger(), true)

		require.NoError(t, tui.InjectInput("hit"))

		assert.Equal(t, "hit", tui.WaitForInput())
	})

	t.Run("input injection fails in production mode", func(t *testing.T) {
		tui := New(testLogger())

		err := tui.InjectInput("hit")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test mode")
	})
}

func TestSetPrompt(t *testing.T) {
	tui := NewWithOptions(testLogger(), true)

	tui.SetPrompt(PromptAction, "Hand: [A♠ T♥] 11/21")
	assert.Equal(t, PromptAction, tui.promptMode)
	assert.Equal(t, "Hand: [A♠ T♥] 11/21", tui.handLine)

	tui.SetPrompt(PromptNone, "")
	assert.Equal(t, PromptNone, tui.promptMode)
}

func TestSetTableInfo(t *testing.T) {
	tui := NewWithOptions(testLogger(), true)

	tui.SetTableInfo(3, 280, []PlayerInfo{
		{Name: "You", Bankroll: 180, Bet: 20},
		{Name: "Jack 2", Bankroll: 0, Bankrupt: true},
	})

	assert.Equal(t, 3, tui.round)
	assert.Equal(t, 280, tui.shoeCards)
	require.Len(t, tui.players, 2)
	assert.True(t, tui.players[1].Bankrupt)
}

func TestFormatTotals(t *testing.T) {
	assert.Equal(t, "17", formatTotals([]int{17}))
	assert.Equal(t, "7/17", formatTotals([]int{7, 17}))
	assert.Equal(t, "", formatTotals(nil))
}
