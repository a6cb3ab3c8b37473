// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/ui/tui/util"
)

// CloseFunc runs after a popup was closed and destroyed.
type CloseFunc func(closed *util.Model) tea.Cmd

type openMsg struct {
	model   *util.Model
	onClose CloseFunc
}

type closeMsg struct{}

// Open shows m above everything the nearest Injector renders.
func Open(m *util.Model) tea.Cmd {
	return OpenWithCallback(m, nil)
}

func OpenWithCallback(m *util.Model, onClose CloseFunc) tea.Cmd {
	return func() tea.Msg { return openMsg{model: m, onClose: onClose} }
}

// Close closes the topmost popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
