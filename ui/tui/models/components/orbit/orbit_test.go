// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package orbit

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func TestFrames_Shape(t *testing.T) {
	fs := frames()
	if len(fs) != frameCount {
		t.Fatalf("frames = %d, want %d", len(fs), frameCount)
	}
	for i, f := range []string{fs[0], fs[frameCount/2]} {
		if lipgloss.Height(f) != gridHeight || lipgloss.Width(f) != gridWidth {
			t.Fatalf("frame %d has size %dx%d", i, lipgloss.Width(f), lipgloss.Height(f))
		}
		if strings.Count(f, "●") != len(rings) {
			t.Fatalf("frame %d shows %d electrons", i, strings.Count(f, "●"))
		}
	}
	if fs[0] == fs[7] {
		t.Fatalf("animation does not move")
	}
}

func TestOrbit_Ticks(t *testing.T) {
	m := New()
	msg := m.Init()()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Fatalf("expected spinner tick, got %T", msg)
	}
	before := m.View()
	if m.Update(msg) == nil {
		t.Fatalf("spinner should reschedule itself")
	}
	if m.View() == before {
		t.Fatalf("frame did not advance")
	}
	w, h := Size()
	if w != gridWidth || h != gridHeight {
		t.Fatalf("Size() = %d,%d", w, h)
	}
}
