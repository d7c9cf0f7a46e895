package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/practice"
	"github.com/lox/pokerbasics/internal/randutil"
	"github.com/lox/pokerbasics/internal/scenario"
)

func newTestModel(t *testing.T, testMode bool) *TUIModel {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	session := scenario.NewSession(scenario.DefaultCatalog(), randutil.New(42),
		scenario.WithLogger(logger), scenario.WithClock(quartz.NewMock(t)))
	return NewTUIModelWithOptions(practice.NewTrainer(session, logger), logger, testMode)
}

func press(m *TUIModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	runeN = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}
	runeC = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}
	runeQ = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestTUITestMode(t *testing.T) {
	t.Run("test mode captures log entries", func(t *testing.T) {
		tui := newTestModel(t, true)

		assert.True(t, tui.IsTestMode())
		assert.Empty(t, tui.GetCapturedLog())

		tui.AddLogEntry("Hand #1")
		tui.AddLogEntry("Flop")

		assert.Equal(t, []string{"Hand #1", "Flop"}, tui.GetCapturedLog())
	})

	t.Run("production mode does not capture logs", func(t *testing.T) {
		tui := newTestModel(t, false)

		assert.False(t, tui.IsTestMode())
		tui.AddLogEntry("Some log entry")
		assert.Nil(t, tui.GetCapturedLog())
	})

	t.Run("captured log is a copy", func(t *testing.T) {
		tui := newTestModel(t, true)
		tui.AddLogEntry("original")

		captured := tui.GetCapturedLog()
		captured[0] = "changed"
		assert.Equal(t, "original", tui.GetCapturedLog()[0])
	})
}

func TestRevealWalksStages(t *testing.T) {
	tui := newTestModel(t, true)

	// First reveal deals a hand
	press(tui, enter)
	hand := tui.trainer.Current()
	require.NotNil(t, hand)
	assert.Equal(t, practice.Preflop, hand.Stage())

	press(tui, enter)
	assert.Equal(t, practice.Flop, hand.Stage())
	press(tui, enter)
	assert.Equal(t, practice.Turn, hand.Stage())
	press(tui, enter)
	assert.Equal(t, practice.River, hand.Stage())

	// Nothing left to reveal
	press(tui, enter)
	assert.Equal(t, practice.River, hand.Stage())

	captured := tui.GetCapturedLog()
	require.Len(t, captured, 5)
	assert.True(t, strings.HasPrefix(captured[0], "Hand #1: "))
	assert.True(t, strings.HasPrefix(captured[1], "Flop: "))
	assert.True(t, strings.HasPrefix(captured[2], "Turn: "))
	assert.True(t, strings.HasPrefix(captured[3], "River: "))
	assert.True(t, strings.HasPrefix(captured[4], "Final hand: "))

	tally := tui.trainer.Tally()
	assert.Equal(t, 1, tally.Dealt)
	assert.Equal(t, 1, tally.Completed)
}

func TestNewHandKey(t *testing.T) {
	tui := newTestModel(t, true)

	press(tui, runeN)
	first := tui.trainer.Current()
	require.NotNil(t, first)

	press(tui, enter)
	press(tui, runeN)
	second := tui.trainer.Current()
	assert.NotSame(t, first, second)
	assert.Equal(t, practice.Preflop, second.Stage())
	assert.Equal(t, 2, tui.trainer.Session().Hands())
}

func TestView(t *testing.T) {
	tui := newTestModel(t, true)
	assert.Equal(t, "Loading...", tui.View())

	tui.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	assert.Contains(t, tui.View(), "Press space to deal")

	for range 4 {
		press(tui, enter)
	}
	view := tui.View()
	assert.Contains(t, view, "Your Final Hand")
	assert.Contains(t, view, "New Hand")

	press(tui, runeC)
	assert.True(t, tui.showChart)
	assert.Contains(t, tui.View(), "Hand Rankings")

	press(tui, runeC)
	assert.False(t, tui.showChart)
}

func TestQuit(t *testing.T) {
	tui := newTestModel(t, true)
	tui.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := press(tui, runeQ)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, tui.View())
}

func TestFormatCardsHighlightsWinningCards(t *testing.T) {
	tui := newTestModel(t, true)
	cards := deck.MustParseCards("AsKh")

	plain := tui.formatCards(cards, 0)
	assert.Contains(t, plain, "A♠")
	assert.Contains(t, plain, "K♥")
	assert.Empty(t, tui.formatCards(nil, 0))

	highlighted := tui.formatCards(cards, deck.NewCardSet(cards[0]))
	assert.Contains(t, highlighted, "A♠")
}

func TestKeyMapHelp(t *testing.T) {
	keys := defaultKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, row := range keys.FullHelp() {
		assert.NotEmpty(t, row)
	}
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace}, keys.Reveal))
}
