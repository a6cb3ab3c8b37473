// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/ui/tui/util"
)

type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding  { return k }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func bindings() keyMap {
	disabled := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "hidden"))
	disabled.SetEnabled(false)
	return keyMap{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		disabled,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func TestModel_ShowsAnnouncedKeys(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: bindings()})

	view := m.View()
	if !strings.Contains(view, "generate") || !strings.Contains(view, "close") {
		t.Fatalf("missing bindings in %q", view)
	}
	if strings.Contains(view, "hidden") {
		t.Fatalf("disabled binding rendered: %q", view)
	}

	m.ToggleExpanded()
	if !strings.Contains(m.View(), "generate") {
		t.Fatalf("expanded view misses bindings")
	}
}

func TestShortHelpView_Truncates(t *testing.T) {
	h := help.New()
	h.Width = 14
	view := ShortHelpView(h, bindings())
	if !strings.Contains(view, "generate") || strings.Contains(view, "close") {
		t.Fatalf("unexpected truncation: %q", view)
	}
	if !strings.Contains(view, h.Ellipsis) {
		t.Fatalf("expected ellipsis in %q", view)
	}
}

func TestModel_EmptyWithoutKeyMap(t *testing.T) {
	if New().View() != "" {
		t.Fatalf("expected empty view")
	}
}
