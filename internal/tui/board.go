package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
)

// RunDashboard opens the interactive dashboard.
func RunDashboard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newDashModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
