package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/region-mirror/internal/logger"
	"github.com/MKhiriev/region-mirror/internal/manager"
)

type TUI struct {
	manager manager.Manager
	pkField string
	log     *logger.Logger
}

func New(mgr manager.Manager, pkField string, log *logger.Logger) *TUI {
	return &TUI{manager: mgr, pkField: pkField, log: log}
}

// Run shows the machine list screen and blocks until the user quits or the
// program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newMachinesModel(ctx, t.manager, t.pkField)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
