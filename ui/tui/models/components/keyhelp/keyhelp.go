// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the bindings announced by the focused model.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/util"
)

var (
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	sepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	help help.Model
}

func New() *Model {
	h := help.New()
	h.Styles.ShortKey, h.Styles.FullKey = keyStyle, keyStyle
	h.Styles.ShortDesc, h.Styles.FullDesc = descStyle, descStyle
	h.Styles.ShortSeparator, h.Styles.FullSeparator = sepStyle, sepStyle
	h.Styles.Ellipsis = sepStyle
	return &Model{help: h}
}

// SetWidth limits the rendered help to w columns.
func (m *Model) SetWidth(w int) {
	m.help.Width = max(w, 0)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
	case util.AnnounceKeyMapMsg:
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	switch {
	case m.KeyMap == nil:
		return ""
	case m.Expanded:
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	default:
		return ShortHelpView(m.help, m.KeyMap.ShortHelp())
	}
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
