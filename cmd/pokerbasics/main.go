package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Practice  PracticeCmd      `cmd:"" default:"1" help:"Practice reading hands street by street (default)"`
	Deal      DealCmd          `cmd:"" help:"Deal practice hands and print each reveal"`
	Eval      EvalCmd          `cmd:"" help:"Evaluate the best five-card hand from five or more cards"`
	Hands     HandsCmd         `cmd:"" help:"Show the hand ranking chart and quick tips"`
	Scenarios ScenariosCmd     `cmd:"" help:"List practice scenarios and how often they are picked"`
	Simulate  SimulateCmd      `cmd:"" help:"Deal many sessions and report the hand distribution"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerbasics"),
		kong.Description("Learn to read poker hands with biased practice deals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
