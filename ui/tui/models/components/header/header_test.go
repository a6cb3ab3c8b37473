// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHeader_RendersBrandAndNav(t *testing.T) {
	m := New("Quantum PKI", "Features", "Demo", "About")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 4})
	view := m.View()
	for _, want := range []string{"Quantum PKI", "1 Features", "2 Demo", "3 About"} {
		if !strings.Contains(view, want) {
			t.Fatalf("header misses %q:\n%s", want, view)
		}
	}
}

func TestHeader_SetActive(t *testing.T) {
	m := New("Quantum PKI", "Features", "Demo")
	if m.Active() != -1 {
		t.Fatalf("no entry should be active initially")
	}
	m.Update(SetActive(1)())
	if m.Active() != 1 {
		t.Fatalf("active = %d, want 1", m.Active())
	}
}

func TestSizeConfig_HidesOnSmallTerminals(t *testing.T) {
	if got := SizeConfig.Calculate(nil, 0, 5); got != 0 {
		t.Fatalf("size on tiny terminal = %d, want 0", got)
	}
	if got := SizeConfig.Calculate(nil, 0, 40); got != 4 {
		t.Fatalf("size = %d, want 4", got)
	}
}
