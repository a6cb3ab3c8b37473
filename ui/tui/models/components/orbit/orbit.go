// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package orbit draws the decorative quantum orbit of the hero section.
package orbit

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/util"
)

type Model struct {
	spinner spinner.Model
}

func New() *Model {
	return &Model{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Spinner{Frames: frames(), FPS: fps}),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m Model) View() string {
	return m.spinner.View()
}

// Size returns the fixed dimensions of the animation.
func Size() (width, height int) {
	return gridWidth, gridHeight
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
