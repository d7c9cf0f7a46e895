package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type ScenariosCmd struct{}

func (c *ScenariosCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	data := pterm.TableData{{"Scenario", "Weight", "Chance", "Hit rate", "Notes"}}
	for _, sc := range catalog.Scenarios() {
		hitRate := "-"
		if sc.IsDraw() {
			hitRate = fmt.Sprintf("%.0f%%", sc.HitRate*100)
		}

		var notes []string
		if sc.MustShow {
			notes = append(notes, "must show")
		}
		if sc.Weight == 0 && !sc.MustShow {
			notes = append(notes, "by name only")
		}

		data = append(data, []string{
			sc.Name,
			fmt.Sprintf("%d", sc.Weight),
			fmt.Sprintf("%.1f%%", catalog.Probability(sc.Name)*100),
			hitRate,
			strings.Join(notes, ", "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering scenario table: %w", err)
	}

	out := g.stdout()
	fmt.Fprintln(out, table)

	schedule := cfg.ForceSchedule()
	fmt.Fprintf(out, "Unseen must-show scenarios are forced at hands %v and every %d hands.\n",
		schedule.Checkpoints, schedule.Every)
	return nil
}
