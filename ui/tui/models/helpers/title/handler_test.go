// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTitleHandler(t *testing.T) {
	h := NewHandler("Quantum PKI", " | ")
	if h.Title() != "Quantum PKI" {
		t.Fatalf("base title = %q", h.Title())
	}

	cmd, handled := h.Handle(Set("Demo")())
	if !handled || cmd == nil {
		t.Fatalf("expected title change to be handled")
	}
	if h.Title() != "Quantum PKI | Demo" {
		t.Fatalf("title = %q", h.Title())
	}

	if cmd, handled := h.Handle(Set("Demo")()); !handled || cmd != nil {
		t.Fatalf("unchanged title must not emit a command")
	}
	if _, handled := h.Handle(tea.KeyMsg{}); handled {
		t.Fatalf("foreign messages must not be handled")
	}

	h.Handle(Set("")())
	if h.Title() != "Quantum PKI" {
		t.Fatalf("cleared title = %q", h.Title())
	}
}
