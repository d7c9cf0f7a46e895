package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokerbasics/internal/practice"
	"github.com/lox/pokerbasics/internal/tui"
)

type PracticeCmd struct {
	LogFile string `help:"Write logs to this file (defaults to the config log file)"`
}

func (c *PracticeCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	path := c.LogFile
	if path == "" {
		path = cfg.Log.File
	}
	logFile, err := openLogFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(g.stderr(), "failed to close log file: %v\n", err)
		}
	}()

	logger := newLogger(logFile, cfg.LogLevel(), "MAIN")
	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	trainer := practice.NewTrainer(session, logger)
	model := tui.NewTUIModel(trainer, logger)

	logger.Info("Starting practice session", "session", session.ID())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	tally := trainer.Tally()
	logger.Info("Practice session finished",
		"hands", tally.Dealt,
		"completed", tally.Completed,
		"elapsed", session.Elapsed(),
		"seen", session.Seen())
	return nil
}
