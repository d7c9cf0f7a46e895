package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/handbook"
	"github.com/lox/pokerbasics/internal/tui"
)

type EvalCmd struct {
	Cards []string `arg:"" help:"Cards to evaluate, e.g. As Kd Th 10c 9c or AsKdTh10c9c"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cards, err := parseDistinctCards(c.Cards)
	if err != nil {
		return err
	}

	best, err := evaluator.EvaluateBest(cards)
	if err != nil {
		return fmt.Errorf("evaluating %d cards: %w", len(cards), err)
	}

	out := g.stdout()
	fmt.Fprintf(out, "Cards:     %s\n", tui.RenderCards(cards, deck.NewCardSet(best.Cards[:]...)))
	fmt.Fprintf(out, "Hand:      %s\n", tui.FinalHandStyle.Render(best.Describe()))
	fmt.Fprintf(out, "Best five: %s\n", tui.RenderCards(best.Cards[:], 0))
	fmt.Fprintf(out, "Strength:  %d\n", best.Strength)
	if entry, ok := handbook.Lookup(best.Category); ok {
		fmt.Fprintf(out, "Rank:      #%d of 10\n", entry.Rank())
	}
	fmt.Fprintln(out, tui.InfoStyle.Render(handbook.Explain(best.Category)))
	return nil
}

// parseDistinctCards parses card arguments and rejects repeated cards
func parseDistinctCards(args []string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}

	var seen deck.CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			return nil, fmt.Errorf("card %s given more than once", card)
		}
		seen.Add(card)
	}
	return cards, nil
}
