// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package landing

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/quantumpki/qpki/internal/i18n"
)

type KeyMap struct {
	OpenDemo key.Binding
	Features key.Binding
	Demo     key.Binding
	About    key.Binding
	Top      key.Binding
	Scroll   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.OpenDemo, km.Features, km.Demo, km.About, km.Scroll}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.OpenDemo}, {km.Features, km.Demo, km.About, km.Top}, {km.Scroll}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap() KeyMap {
	return KeyMap{
		OpenDemo: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", i18n.T("key.open_demo")),
		),
		Features: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", i18n.T("nav.features")),
		),
		Demo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", i18n.T("nav.demo")),
		),
		About: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", i18n.T("nav.about")),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", i18n.T("key.top")),
		),
		// handled by the viewport, listed for the help only
		Scroll: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", i18n.T("key.scroll")),
		),
	}
}
