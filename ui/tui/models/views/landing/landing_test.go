// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package landing

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/ui/tui/models/components/popup"
	"github.com/quantumpki/qpki/ui/tui/util"
)

func testConfig() config.DemoConfig {
	cfg := config.DefaultDemo()
	cfg.MetricsInterval = time.Millisecond
	return cfg
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// step runs cmd, feeds the resulting messages to m and returns what they
// produced.
func step(m util.Model, cmd tea.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range collect(cmd) {
		cmds = append(cmds, m.Update(msg))
	}
	return tea.Batch(cmds...)
}

func newSized(t *testing.T) *Model {
	t.Helper()
	m := New(testConfig())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 15})
	return m
}

func TestLanding_RendersAllSections(t *testing.T) {
	m := newSized(t)
	content := m.render(m.contentWidth())
	for _, want := range []string{"Quantum PKI", "Quantum Security Features", "Interactive Prototype", "The Quantum Revolution", "Privacy Policy"} {
		if !strings.Contains(content, want) {
			t.Errorf("page misses %q", want)
		}
	}
	if !(m.Offset(SectionFeatures) < m.Offset(SectionDemo) && m.Offset(SectionDemo) < m.Offset(SectionAbout)) {
		t.Fatalf("section offsets out of order: %v", m.offsets)
	}
}

func TestLanding_JumpToSections(t *testing.T) {
	m := newSized(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if m.Active() != SectionDemo {
		t.Fatalf("active = %v, want demo", m.Active())
	}
	if m.YOffset() != m.Offset(SectionDemo) {
		t.Fatalf("y offset = %d, want %d", m.YOffset(), m.Offset(SectionDemo))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.Active() != SectionHero || m.YOffset() != 0 {
		t.Fatalf("g should return to the top, active = %v offset = %d", m.Active(), m.YOffset())
	}
}

func TestLanding_ScrollTracksActiveSection(t *testing.T) {
	m := newSized(t)
	for m.YOffset() < m.Offset(SectionFeatures) {
		before := m.YOffset()
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		if m.YOffset() == before {
			t.Fatal("viewport did not scroll")
		}
	}
	if m.Active() != SectionFeatures {
		t.Fatalf("active = %v, want features", m.Active())
	}
}

func TestLanding_OpenDemoOnce(t *testing.T) {
	m := newSized(t)

	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil || !m.ShowDemo() {
		t.Fatal("enter should open the demo")
	}
	if cmd := m.OpenDemo(); cmd != nil {
		t.Fatal("a second demo must not be opened")
	}
	m.Update(demoClosedMsg{})
	if m.ShowDemo() {
		t.Fatal("closing should clear the flag")
	}
}

func TestLanding_DemoPopupLifecycle(t *testing.T) {
	m := newSized(t)
	inj := popup.NewInjector(util.ModelPointer(m))
	inj.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	step(inj, inj.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	if !inj.Open() || !m.ShowDemo() {
		t.Fatal("demo popup should be open")
	}

	// esc reaches the demo, which asks the popup to close
	step(inj, step(inj, inj.Update(tea.KeyMsg{Type: tea.KeyEsc})))
	if inj.Open() {
		t.Fatal("popup should be closed")
	}
	if m.ShowDemo() {
		t.Fatal("landing should have been told about the closure")
	}
}
