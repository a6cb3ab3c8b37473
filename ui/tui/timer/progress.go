// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressTickMsg advances the Progress with the matching id.
type ProgressTickMsg struct {
	ID  int
	tag int
}

// Progress counts from 0 to 100 in Step increments, one increment per Delay.
// The value 100 is always shown for one full Delay before Update reports
// completion.
type Progress struct {
	Step  int
	Delay time.Duration

	id      int
	tag     int
	value   int
	running bool
}

func NewProgress(step int, delay time.Duration) Progress {
	return Progress{
		Step:  max(step, 1),
		Delay: delay,
		id:    nextID(),
	}
}

func (p Progress) ID() int       { return p.id }
func (p Progress) Value() int    { return p.value }
func (p Progress) Running() bool { return p.running }

// Percent returns the value as a fraction for bubbles/progress.
func (p Progress) Percent() float64 { return float64(p.value) / 100 }

// Start begins a new run at 0. Ticks of any earlier run become stale.
func (p *Progress) Start() tea.Cmd {
	p.tag++
	p.value = 0
	p.running = true
	return p.tick()
}

// Stop cancels the current run and resets the value.
func (p *Progress) Stop() {
	p.tag++
	p.value = 0
	p.running = false
}

// Update consumes ticks of the current run. done is true exactly once per
// run, on the tick that follows the value reaching 100.
func (p *Progress) Update(msg tea.Msg) (cmd tea.Cmd, done bool) {
	tick, ok := msg.(ProgressTickMsg)
	if !ok || tick.ID != p.id || tick.tag != p.tag || !p.running {
		return nil, false
	}

	if p.value >= 100 {
		p.running = false
		return nil, true
	}

	p.value = min(p.value+p.Step, 100)
	return p.tick(), false
}

func (p Progress) tick() tea.Cmd {
	id, tag := p.id, p.tag
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return ProgressTickMsg{ID: id, tag: tag}
	})
}
