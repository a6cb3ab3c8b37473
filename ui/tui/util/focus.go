// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the footer which bindings are currently active.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg { return AnnounceKeyMapMsg{KeyMap: k} }
}

// FocusAndAnnounce focuses f and announces the key map it reports.
func FocusAndAnnounce(f Focusable) tea.Cmd {
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, AnnounceKeyMapCmd(keyMap))
}

// MergeKeyMaps concatenates the bindings of keymaps in order, skipping nil
// entries.
func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	merged := make(mergedKeyMap, 0, len(keymaps))
	for _, k := range keymaps {
		if k != nil {
			merged = append(merged, k)
		}
	}
	return merged
}

type mergedKeyMap []help.KeyMap

func (m mergedKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, k := range m {
		out = append(out, k.ShortHelp()...)
	}
	return out
}

func (m mergedKeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, k := range m {
		out = append(out, k.FullHelp()...)
	}
	return out
}
