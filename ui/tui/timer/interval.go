// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// IntervalTickMsg fires once per period of the Interval with the matching id.
type IntervalTickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Interval is a recurring tick that lives between Start and Stop.
type Interval struct {
	Every time.Duration

	id      int
	tag     int
	running bool
}

func NewInterval(every time.Duration) Interval {
	return Interval{
		Every: every,
		id:    nextID(),
	}
}

func (i Interval) ID() int       { return i.id }
func (i Interval) Running() bool { return i.running }

// Start schedules the first tick. Starting a running interval restarts it.
func (i *Interval) Start() tea.Cmd {
	i.tag++
	i.running = true
	return i.tick()
}

// Stop invalidates every tick still in flight.
func (i *Interval) Stop() {
	i.tag++
	i.running = false
}

// Update reports whether msg is a live tick of this interval and returns
// the command scheduling the next one.
func (i *Interval) Update(msg tea.Msg) (cmd tea.Cmd, fired bool) {
	tick, ok := msg.(IntervalTickMsg)
	if !ok || tick.ID != i.id || tick.tag != i.tag || !i.running {
		return nil, false
	}
	return i.tick(), true
}

func (i Interval) tick() tea.Cmd {
	id, tag := i.id, i.tag
	return tea.Tick(i.Every, func(t time.Time) tea.Msg {
		return IntervalTickMsg{ID: id, Time: t, tag: tag}
	})
}
