// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package featurecard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestFeatureCard_View(t *testing.T) {
	m := New("◈", "Quantum-Safe Authentication", "Post-quantum algorithms.")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	view := m.View()
	for _, want := range []string{"◈", "Authentication", "Post-quantum"} {
		if !strings.Contains(view, want) {
			t.Fatalf("card misses %q:\n%s", want, view)
		}
	}
	if w := lipgloss.Width(view); w > 40 {
		t.Fatalf("card width %d exceeds 40", w)
	}
}
