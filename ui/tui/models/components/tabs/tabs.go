// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabs renders a row of tab triggers and tracks the active one.
package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeTab = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#22D3EE"))
	inactiveTab = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("#1E293B"))
)

type Model struct {
	Titles []string

	active int
}

func New(titles ...string) Model {
	return Model{Titles: titles}
}

func (m Model) Active() int { return m.active }

// Set activates tab i and reports whether the active tab changed.
func (m *Model) Set(i int) bool {
	if i < 0 || i >= len(m.Titles) || i == m.active {
		return false
	}
	m.active = i
	return true
}

// Next and Prev wrap around.
func (m *Model) Next() { m.active = (m.active + 1) % len(m.Titles) }
func (m *Model) Prev() { m.active = (m.active - 1 + len(m.Titles)) % len(m.Titles) }

// View renders the triggers spread across width. Titles are shortened when
// the row does not fit.
func (m Model) View(width int) string {
	if len(m.Titles) == 0 {
		return ""
	}
	cell := max(width/len(m.Titles), 1)
	cells := make([]string, len(m.Titles))
	for i, title := range m.Titles {
		style := inactiveTab
		if i == m.active {
			style = activeTab
		}
		cells[i] = style.
			Width(cell).
			MaxWidth(cell).
			Align(lipgloss.Center).
			Render(title)
	}
	return strings.Join(cells, "")
}
