// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package tabs

import (
	"strings"
	"testing"
)

func TestTabs_Navigation(t *testing.T) {
	m := New("Key Generation", "Encryption", "Authentication", "Security Monitor")
	if m.Active() != 0 {
		t.Fatalf("initial tab = %d", m.Active())
	}
	m.Prev()
	if m.Active() != 3 {
		t.Fatalf("prev should wrap to last, got %d", m.Active())
	}
	m.Next()
	if m.Active() != 0 {
		t.Fatalf("next should wrap to first, got %d", m.Active())
	}
	if !m.Set(2) || m.Active() != 2 {
		t.Fatalf("Set(2) failed")
	}
	if m.Set(2) {
		t.Fatalf("setting the active tab again is not a change")
	}
	if m.Set(9) || m.Set(-1) {
		t.Fatalf("out of range tabs must be rejected")
	}
}

func TestTabs_View(t *testing.T) {
	m := New("Keys", "Crypto")
	view := m.View(40)
	if !strings.Contains(view, "Keys") || !strings.Contains(view, "Crypto") {
		t.Fatalf("view = %q", view)
	}
}
