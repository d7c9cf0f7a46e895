package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/handbook"
	"github.com/lox/pokerbasics/internal/practice"
)

// TUIModel represents the Bubble Tea model for the practice trainer
type TUIModel struct {
	trainer *practice.Trainer
	logger  *log.Logger

	// UI components
	logViewport viewport.Model
	keys        keyMap
	help        help.Model

	// State
	gameLog   []string
	showChart bool
	quitting  bool

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// NewTUIModel creates a new TUI model driving trainer
func NewTUIModel(trainer *practice.Trainer, logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(trainer, logger, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(trainer *practice.Trainer, logger *log.Logger, testMode bool) *TUIModel {
	// Will be properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &TUIModel{
		trainer:     trainer,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		keys:        defaultKeyMap(),
		help:        help.New(),
		gameLog:     []string{},
		testMode:    testMode,
		capturedLog: []string{},
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reveal):
			m.reveal()
		case key.Matches(msg, m.keys.NewHand):
			m.newHand()
		case key.Matches(msg, m.keys.Chart):
			m.showChart = !m.showChart
		case key.Matches(msg, m.keys.Up):
			m.logViewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.logViewport.ScrollDown(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// reveal deals the next street, or a first hand when none is in progress
func (m *TUIModel) reveal() {
	hand := m.trainer.Current()
	if hand == nil {
		m.newHand()
		return
	}
	if hand.Done() {
		return
	}

	stage := m.trainer.Advance()
	best, _ := hand.Evaluate()
	entry := fmt.Sprintf("%s: %s  %s", stage.Title(), m.formatCards(hand.Community(), 0), best.Name())
	if draws := hand.Draws(); !draws.None() {
		entry += ", " + draws.String()
	}
	m.AddLogEntry(entry)
	if stage == practice.River {
		m.AddLogEntry(fmt.Sprintf("Final hand: %s", best.Describe()))
	}
}

func (m *TUIModel) newHand() {
	hand := m.trainer.Deal()
	m.AddLogEntry(fmt.Sprintf("Hand #%d: %s", m.trainer.Session().Hands(), m.formatCards(hand.Hole(), 0)))
	m.logger.Info("Dealt hand", "hand", m.trainer.Session().Hands(), "scenario", hand.Deal().Scenario)
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Render(actionContent)

	paneHeight := max(m.height-actionHeight-4, 1) // Account for borders and action pane

	// Sidebar pane (session summary, or the hand chart)
	var sidebarContent string
	if m.showChart {
		sidebarContent = m.renderChart()
	} else {
		sidebarContent = m.renderSidebarPane()
	}
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)
	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	// Table pane: the hand being revealed above its log
	tableContent := m.renderTablePane()
	tableWidth := max(m.width-sidebarWidth-4, 1)
	logHeight := max(paneHeight-lipgloss.Height(tableContent)-1, 1)

	m.logViewport.Width = tableWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(GameLogStyle.Render(strings.Join(m.gameLog, "\n")))
	if !m.initialized && tableWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	tablePane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(tableWidth).
		Height(paneHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, tableContent, "", m.logViewport.View()))

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderTablePane renders the stage, board, hole cards and current hand
func (m *TUIModel) renderTablePane() string {
	hand := m.trainer.Current()
	if hand == nil {
		return HandInfoStyle.Render("Ready to practice? Press space to deal.")
	}

	var content strings.Builder
	winning := hand.WinningCards()

	content.WriteString(m.renderStageTrack(hand.Stage()))
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render("Board"))
	content.WriteString("\n")
	board := m.formatCards(hand.Community(), winning)
	hidden := strings.Repeat(" "+HiddenCardStyle.Render("##"), 5-len(hand.Community()))
	content.WriteString(board + hidden)
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render("Your Cards"))
	content.WriteString("\n")
	content.WriteString(m.formatCards(hand.Hole(), winning))
	chartKey, percentile := hand.StartingHand()
	content.WriteString(InfoStyle.Render(fmt.Sprintf("  %s, ahead of %.0f%% of starting hands", chartKey, percentile*100)))
	content.WriteString("\n\n")

	best, ok := hand.Evaluate()
	switch {
	case !ok:
		content.WriteString(InfoStyle.Render("Deal the flop to see your hand."))
	case !hand.Done():
		content.WriteString(HandInfoStyle.Render("Current Hand: " + best.Name()))
		content.WriteString("\n")
		if draws := hand.Draws(); !draws.None() {
			content.WriteString(ActionsStyle.Render("Drawing to: " + draws.String()))
			content.WriteString("\n")
		}
		content.WriteString(InfoStyle.Render("Keep dealing to see your final hand..."))
	default:
		content.WriteString(FinalHandStyle.Render("Your Final Hand: " + best.Name()))
		content.WriteString("\n")
		content.WriteString(HandInfoStyle.Render(handbook.Explain(best.Category)))
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render("The highlighted cards make your best hand."))
	}

	return content.String()
}

// renderStageTrack renders the stage progress, e.g. "● Pre-Flop ● Flop ○ Turn ○ River"
func (m *TUIModel) renderStageTrack(current practice.Stage) string {
	var parts []string
	for _, stage := range []practice.Stage{practice.Preflop, practice.Flop, practice.Turn, practice.River} {
		if stage <= current {
			parts = append(parts, StageDoneStyle.Render("● "+stage.Title()))
		} else {
			parts = append(parts, StagePendingStyle.Render("○ "+stage.Title()))
		}
	}
	return strings.Join(parts, "  ")
}

// renderSidebarPane creates the session summary
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder
	tally := m.trainer.Tally()
	session := m.trainer.Session()

	content.WriteString(HeaderStyle.Render(" Session "))
	content.WriteString(" ")
	content.WriteString(InfoStyle.Render(session.ID().Short()))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Hands dealt: %d\n", tally.Dealt))
	content.WriteString(fmt.Sprintf("Completed:   %d\n", tally.Completed))
	content.WriteString(fmt.Sprintf("Time:        %s\n\n", session.Elapsed().Round(time.Second)))

	content.WriteString(InfoStyle.Render("Hands made:"))
	content.WriteString("\n")
	for _, c := range tally.Categories() {
		content.WriteString(fmt.Sprintf("  %-16s %d\n", c, tally.ByCategory[c]))
	}
	if missing := len(tally.Missing()); missing > 0 {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("  %d still to see", missing)))
		content.WriteString("\n")
	}

	return content.String()
}

// renderChart creates the hand ranking chart
func (m *TUIModel) renderChart() string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" Hand Rankings "))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("#1 is best, #10 is worst"))
	content.WriteString("\n\n")

	current := evaluator.Category(-1)
	if hand := m.trainer.Current(); hand != nil {
		if best, ok := hand.Evaluate(); ok {
			current = best.Category
		}
	}

	for _, e := range handbook.Chart() {
		line := fmt.Sprintf("%2d %-16s %s", e.Rank(), e.Name(), m.formatCards(e.Example, 0))
		if e.Category == current {
			line = ActionsStyle.Render("▶") + line
		} else {
			line = " " + line
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	content.WriteString("\n")
	for _, tip := range handbook.Tips() {
		content.WriteString(HandInfoStyle.Render(tip.Title))
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(tip.Description))
		content.WriteString("\n")
	}
	return content.String()
}

// renderActionPane renders the next action and key help
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	hand := m.trainer.Current()
	switch {
	case hand == nil:
		content.WriteString(ActionsStyle.Render("[space] Deal Cards"))
	case hand.Done():
		content.WriteString(ActionsStyle.Render("[n] New Hand"))
	default:
		content.WriteString(ActionsStyle.Render("[space] " + hand.Stage().NextAction()))
	}
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return content.String()
}

// formatCards formats cards with colors, highlighting cards in winning
func (m *TUIModel) formatCards(cards []deck.Card, winning deck.CardSet) string {
	return RenderCards(cards, winning)
}

// RenderCards renders cards in suit colors, highlighting those in winning.
func RenderCards(cards []deck.Card, winning deck.CardSet) string {
	if len(cards) == 0 {
		return ""
	}

	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		style := BlackCardStyle
		if card.IsRed() {
			style = RedCardStyle
		}
		if winning.Contains(card) {
			style = style.Inherit(WinningCardStyle)
		}
		formatted = append(formatted, style.Render(card.String()))
	}

	return strings.Join(formatted, " ")
}

// AddLogEntry adds an entry to the hand log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	// In test mode, also capture the log entry
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	// Only call GotoBottom if viewport has valid dimensions
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the hand log
func (m *TUIModel) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	// Return a copy to prevent modification
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
