// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/buildvars"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/ui/tui/models/components/keyhelp"
	"github.com/quantumpki/qpki/ui/tui/util"
)

var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("#0E7490"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Model shows the key bindings of the focused view followed by the
// application wide ones, with a version/language status on the right.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.help.SetWidth(m.size.Width - lipgloss.Width(m.status()) - 1)
	}
	return nil
}

func (m Model) status() string {
	return statusStyle.Render(fmt.Sprintf("v%s · %s",
		strings.TrimPrefix(buildvars.VersionOrDefault("dev"), "v"),
		strings.ToUpper(i18n.GetLang()),
	))
}

func (m Model) keysView() string {
	return m.help.View()
}

func (m Model) View() string {
	inner := m.size.Shrink(0, 1)
	keys := m.keysView()

	if m.help.Expanded {
		return borderStyle.Render(lipgloss.Place(
			inner.Width, inner.Height,
			lipgloss.Center, lipgloss.Top,
			keys,
		))
	}

	status := m.status()
	gap := max(inner.Width-lipgloss.Width(keys)-lipgloss.Width(status), 1)
	line := keys + strings.Repeat(" ", gap) + status
	return borderStyle.Render(lipgloss.Place(
		inner.Width, inner.Height,
		lipgloss.Left, lipgloss.Top,
		line,
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Expanded reports whether the full help is shown.
func (m *Model) Expanded() bool {
	return m.help.Expanded
}
