package simulator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/scenario"
	"github.com/lox/pokerbasics/internal/statistics"
)

// PrintSummary writes a summary of simulation results: the final category
// distribution as a bar chart and a per-scenario table with hit rates.
func PrintSummary(w io.Writer, stats *statistics.Statistics, catalog *scenario.Catalog) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== FINAL HANDS (%d deals) ===\n", stats.Deals)
	categories, err := categoryTable(stats)
	if err != nil {
		return err
	}
	b.WriteString(categories)

	bars := make(pterm.Bars, 0, len(evaluator.Categories))
	for _, c := range evaluator.Categories {
		bars = append(bars, pterm.Bar{Label: c.String(), Value: stats.Final[c]})
	}
	chart, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Srender()
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	b.WriteString(chart)

	fmt.Fprintf(&b, "\nImproved after the flop: %.1f%%\n", stats.ImprovementRate()*100)

	b.WriteString("\n=== SCENARIOS ===\n")
	scenarios, err := scenarioTable(stats, catalog)
	if err != nil {
		return err
	}
	b.WriteString(scenarios)

	_, err = io.WriteString(w, b.String())
	return err
}

func categoryTable(stats *statistics.Statistics) (string, error) {
	data := pterm.TableData{{"#", "Hand", "Flop", "River"}}
	for _, c := range evaluator.Categories {
		data = append(data, []string{
			fmt.Sprint(c.ChartRank()),
			c.String(),
			percent(stats.FlopShare(c)),
			percent(stats.Share(c)),
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render categories: %w", err)
	}
	return out + "\n", nil
}

func scenarioTable(stats *statistics.Statistics, catalog *scenario.Catalog) (string, error) {
	data := pterm.TableData{{"Scenario", "Deals", "Share", "Expected", "Forced", "Flop draw", "Hit rate", "95% CI"}}
	for _, name := range stats.ScenarioNames() {
		ss := stats.Scenarios[name]
		hitRate, interval := "-", "-"
		if ss.Targeted > 0 {
			low, high := ss.ConfidenceInterval95()
			hitRate = percent(ss.HitRate())
			interval = fmt.Sprintf("[%s, %s]", percent(low), percent(high))
		}
		data = append(data, []string{
			name,
			fmt.Sprint(ss.Deals),
			percent(float64(ss.Deals) / float64(stats.Deals)),
			percent(catalog.Probability(name)),
			fmt.Sprint(ss.Forced),
			percent(ss.FlopDrawRate()),
			hitRate,
			interval,
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render scenarios: %w", err)
	}
	return out + "\n", nil
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// SaveSummary writes the summary without colors to filename. The file is
// written to a temporary sibling and renamed into place, so a reader sees
// either the previous report or the complete new one.
func SaveSummary(filename string, stats *statistics.Statistics, catalog *scenario.Catalog) (err error) {
	var b strings.Builder
	if err := PrintSummary(&b, stats, catalog); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.WriteString(tmp, pterm.RemoveColorFromString(b.String())); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename report: %w", err)
	}
	return nil
}
