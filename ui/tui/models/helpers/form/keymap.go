// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/quantumpki/qpki/internal/i18n"
)

// Action is what an input asks the form to do after handling a message.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
)

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Next, km.Prev} }
func (km KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{km.ShortHelp()} }

var _ help.KeyMap = KeyMap{}

// NavKeyMap returns the field navigation bindings in the active language.
func NavKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", i18n.T("key.next_field")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", i18n.T("key.prev_field")),
		),
	}
}
