// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package featurecard renders the icon, title and description card used in
// the features section of the landing page.
package featurecard

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/util"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0E7490")).
			Padding(1, 2).
			Align(lipgloss.Center)
	iconStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("#F8FAFC")).
			Background(lipgloss.Color("#7C3AED"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8FAFC")).MarginTop(1)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).MarginTop(1)
)

type Model struct {
	Icon        string
	Title       string
	Description string

	size util.Size
}

func New(icon, title, description string) *Model {
	return &Model{Icon: icon, Title: title, Description: description}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	style := cardStyle
	if m.size.Width > 0 {
		// border takes two columns
		style = style.Width(max(m.size.Width-2, 0))
	}
	inner := max(m.size.Width-8, 10)
	return style.Render(lipgloss.JoinVertical(lipgloss.Center,
		iconStyle.Render(m.Icon),
		titleStyle.Width(inner).Align(lipgloss.Center).Render(m.Title),
		descStyle.Width(inner).Align(lipgloss.Center).Render(m.Description),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
