// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the navigation bar shown above the landing page.
package header

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/util"
)

const logo string = "" +
	"╔═╗ ╔═╗╦╔═╦\n" +
	"║═╬╗╠═╝╠╩╗║\n" +
	"╚═╝╚╩  ╩ ╩╩"

var (
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22D3EE"))
	navStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22D3EE")).Underline(true)
)

type activeMsg int

// SetActive highlights the nav entry at index i. Negative values clear it.
func SetActive(i int) tea.Cmd {
	return func() tea.Msg { return activeMsg(i) }
}

type Model struct {
	Brand string
	Nav   []string

	active int
	size   util.Size
}

func New(brand string, nav ...string) *Model {
	return &Model{Brand: brand, Nav: nav, active: -1}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(activeMsg); ok {
		m.active = int(msg)
	}
	return nil
}

// Active returns the highlighted nav index or -1.
func (m Model) Active() int { return m.active }

func (m Model) nav() string {
	items := make([]string, len(m.Nav))
	for i, name := range m.Nav {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == m.active {
			items[i] = activeStyle.Render(label)
		} else {
			items[i] = navStyle.Render(label)
		}
	}
	return strings.Join(items, "   ")
}

func (m Model) View() string {
	left := lipgloss.JoinHorizontal(lipgloss.Center, brandStyle.Render(logo), "  ", brandStyle.Render(m.Brand))
	right := m.nav()
	gap := max(m.size.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#0E7490")).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
