package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerbasics/internal/handbook"
	"github.com/lox/pokerbasics/internal/practice"
	"github.com/lox/pokerbasics/internal/scenario"
	"github.com/lox/pokerbasics/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type DealCmd struct {
	Scenario string `short:"s" help:"Deal this scenario instead of a weighted pick"`
	Count    int    `short:"n" default:"1" help:"Number of hands to deal"`
}

func (c *DealCmd) Run(g *Globals) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(g.stderr(), cfg.LogLevel(), "deal")

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	out := g.stdout()
	for range c.Count {
		var deal scenario.Deal
		if c.Scenario != "" {
			deal, err = session.DealScenario(c.Scenario)
			if err != nil {
				return err
			}
		} else {
			deal = session.NewDeal()
		}
		printHand(out, session.Hands(), deal)
	}
	return nil
}

// printHand prints every reveal of deal, from the hole cards to the river
func printHand(w io.Writer, number int, deal scenario.Deal) {
	title := fmt.Sprintf("Hand #%d: %s", number, deal.Scenario)
	if deal.Forced {
		title += " (forced)"
	}
	fmt.Fprintln(w, titleStyle.Render(title))

	hand := practice.NewHand(deal)
	key, percentile := hand.StartingHand()
	fmt.Fprintf(w, "%-9s %s  %s\n", hand.Stage().Title(), tui.RenderCards(hand.Hole(), 0),
		tui.InfoStyle.Render(fmt.Sprintf("%s, ahead of %.0f%%", key, percentile*100)))
	for hand.Advance() {
		best, _ := hand.Evaluate()
		line := fmt.Sprintf("%-9s %-20s %s", hand.Stage().Title(),
			tui.RenderCards(hand.Community(), 0), tui.HandInfoStyle.Render(best.Name()))
		if draws := hand.Draws(); !draws.None() {
			line += "  " + tui.InfoStyle.Render(draws.String())
		}
		fmt.Fprintln(w, line)
	}

	best, _ := hand.Evaluate()
	fmt.Fprintln(w, tui.FinalHandStyle.Render("Final: "+best.Describe()))
	fmt.Fprintf(w, "Best five: %s\n", tui.RenderCards(best.Cards[:], hand.WinningCards()))
	fmt.Fprintln(w, tui.InfoStyle.Render(handbook.Explain(best.Category)))
	fmt.Fprintln(w, strings.Repeat("─", 40))
}
