// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the small contracts shared by every TUI model.
package util

import tea "github.com/charmbracelet/bubbletea"

// Model is a pointer-receiver bubbletea model that can be placed in a
// stack or shown as a popup.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Destroyable models own scheduled work (timers, intervals) that must stop
// once they are unmounted.
type Destroyable interface {
	Destroy()
}

// ModelPointer boxes v so containers can swap or inspect the model they
// hold.
func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// TryDestroyModel calls Destroy when the model supports it and reports
// whether it did.
func TryDestroyModel(m *Model) bool {
	if m == nil || *m == nil {
		return false
	}
	d, ok := (*m).(Destroyable)
	if ok {
		d.Destroy()
	}
	return ok
}
