package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/brainrot-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits. The live run, if any, is released on every
// exit path so no tick outlives the view.
func Run(ctx context.Context, cfg util.Config, version string) error {
	m, err := newModel(cfg, version)
	if err != nil {
		return err
	}
	defer m.seq.Teardown()
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
