package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"salesdash/cmd/salesdash/dash"
	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/config"
	"salesdash/internal/logging"
)

// runDashboard starts the interactive TUI.
func runDashboard(cfg *config.Config) error {
	err := logging.Initialize(cfg.State.Dir, logging.Config{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.CloseAll()

	mgr, client := newSession(cfg)

	app := &dash.App{
		Cfg:     cfg,
		Styles:  ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		Client:  client,
		Session: mgr,
	}

	logging.Boot("starting dashboard (api %s)", cfg.API.BaseURL)
	p := tea.NewProgram(dash.NewModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.BootError("dashboard exited: %v", err)
		return fmt.Errorf("run dashboard: %w", err)
	}
	logging.Boot("dashboard closed")
	return nil
}
