// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestMergeKeyMaps(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("short help len = %d, want 3", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("full help groups = %d, want 2", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ lo, v, hi, want int }{
		{0, -1, 10, 0},
		{0, 5, 10, 5},
		{0, 11, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.lo, c.v, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.lo, c.v, c.hi, got, c.want)
		}
	}
}

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key msg must not be treated as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("expected resize to be detected")
	}
	if s.ToMsg() != (tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("unexpected size %+v", s)
	}
	if got := s.Shrink(6, 30); got != (Size{Width: 74, Height: 0}) {
		t.Fatalf("Shrink = %+v", got)
	}
}

func TestOverlay(t *testing.T) {
	base := "......\n......\n......"
	got := Overlay(base, "ab\ncd", 2, 1)
	if want := "......\n..ab..\n..cd.."; got != want {
		t.Fatalf("Overlay = %q, want %q", got, want)
	}

	// rows below base are dropped, short lines padded
	got = Overlay("..\n", "xy\nzz", 3, 1)
	if want := "..\n   xy"; got != want {
		t.Fatalf("Overlay = %q, want %q", got, want)
	}
}

func TestOverlayCenter(t *testing.T) {
	base := ".....\n.....\n....."
	if got, want := OverlayCenter(base, "X"), ".....\n..X..\n....."; got != want {
		t.Fatalf("OverlayCenter = %q, want %q", got, want)
	}
}

type destroyable struct {
	destroyed bool
}

func (d *destroyable) Init() tea.Cmd                 { return nil }
func (d *destroyable) Update(tea.Msg) tea.Cmd        { return nil }
func (d *destroyable) View() string                  { return "" }
func (d *destroyable) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (d *destroyable) Blur()                         {}
func (d *destroyable) Destroy()                      { d.destroyed = true }

func TestTryDestroyModel(t *testing.T) {
	d := &destroyable{}
	if !TryDestroyModel(ModelPointer(d)) || !d.destroyed {
		t.Fatalf("expected Destroy to be called")
	}
	if TryDestroyModel(nil) {
		t.Fatalf("nil model must not report destroy")
	}
}
