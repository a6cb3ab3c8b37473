// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/quantumpki/qpki/internal/i18n"
)

type KeyMap struct {
	Close   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tabs    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Close, km.NextTab, km.Tabs}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Close}, {km.NextTab, km.PrevTab, km.Tabs}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("key.close")),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("]", i18n.T("key.next_tab")),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("[", i18n.T("key.prev_tab")),
		),
		Tabs: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", i18n.T("key.tab")),
		),
	}
}

type KeygenKeyMap struct {
	Generate    key.Binding
	CopyPublic  key.Binding
	CopyPrivate key.Binding
	Toggle      key.Binding
	Regenerate  key.Binding
}

func (km KeygenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Generate, km.CopyPublic, km.CopyPrivate, km.Toggle, km.Regenerate}
}

func (km KeygenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Generate, km.Regenerate}, {km.CopyPublic, km.CopyPrivate, km.Toggle}}
}

var _ help.KeyMap = (*KeygenKeyMap)(nil)

func newKeygenKeyMap() KeygenKeyMap {
	return KeygenKeyMap{
		Generate: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", i18n.T("key.generate")),
		),
		CopyPublic: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("key.copy_public")),
		),
		CopyPrivate: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", i18n.T("key.copy_private")),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", i18n.T("key.toggle_private")),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T("key.regenerate")),
		),
	}
}

type AuthKeyMap struct {
	Authenticate key.Binding
	Reset        key.Binding
}

func (km AuthKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Authenticate, km.Reset}
}

func (km AuthKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Authenticate, km.Reset}}
}

var _ help.KeyMap = (*AuthKeyMap)(nil)

func newAuthKeyMap() AuthKeyMap {
	return AuthKeyMap{
		Authenticate: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", i18n.T("key.authenticate")),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T("key.reauth")),
		),
	}
}
