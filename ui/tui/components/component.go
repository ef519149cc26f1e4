package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is the interface that all UI components must implement.
// It is similar to tea.Model but tailored for widgets.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// FrameMsg carries the per-frame animation snapshot to the face widgets.
type FrameMsg struct {
	Progress  float64
	ShowMouth bool
}
