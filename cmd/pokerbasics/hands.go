package main

import (
	"fmt"

	"github.com/lox/pokerbasics/internal/handbook"
	"github.com/lox/pokerbasics/internal/tui"
)

type HandsCmd struct {
	NoTips bool `help:"Only show the ranking chart"`
}

func (c *HandsCmd) Run(g *Globals) error {
	out := g.stdout()

	fmt.Fprintln(out, titleStyle.Render("Poker Hand Rankings"))
	fmt.Fprintln(out, tui.InfoStyle.Render("#1 is best, #10 is worst"))
	fmt.Fprintln(out)
	for _, e := range handbook.Chart() {
		fmt.Fprintf(out, "%2d. %s  %s\n", e.Rank(), tui.HandInfoStyle.Render(fmt.Sprintf("%-16s", e.Name())), tui.RenderCards(e.Example, 0))
		fmt.Fprintf(out, "    %s\n", e.Description)
		fmt.Fprintf(out, "    %s\n", tui.InfoStyle.Render("Tip: "+e.Tip))
	}

	if c.NoTips {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Quick Tips"))
	for _, tip := range handbook.Tips() {
		fmt.Fprintf(out, "%s %s\n", tui.ActionsStyle.Render(tip.Title+":"), tip.Description)
	}
	return nil
}
