// Package ui provides the runner logic for the interactive dashboard.
package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/tui"
)

// UI launches the interactive week board.
type UI struct {
	Persistence store.Persistence
}

// Do runs the dashboard until the user quits.
func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not launch ui, no persistence")
	}

	service := &app.Service{Persistence: n.Persistence}
	p := tea.NewProgram(tui.NewModel(service), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
