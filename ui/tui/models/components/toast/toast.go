// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package toast shows transient notifications in the corner of the screen.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/util"
	"github.com/quantumpki/qpki/util/slicest"
)

type Variant int

const (
	Default Variant = iota
	Destructive
)

const (
	DefaultDuration = 4 * time.Second
	DefaultLimit    = 3
	width           = 44
)

type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

type showMsg struct {
	Toast
}

type expireMsg struct {
	id int
}

// Show queues a regular notification.
func Show(title, description string) tea.Cmd {
	return func() tea.Msg {
		return showMsg{Toast{Title: title, Description: description}}
	}
}

// ShowDestructive queues an error notification.
func ShowDestructive(title, description string) tea.Cmd {
	return func() tea.Msg {
		return showMsg{Toast{Title: title, Description: description, Variant: Destructive}}
	}
}

// IsToastMsg reports whether msg belongs to the toaster.
func IsToastMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case showMsg, expireMsg:
		return true
	}
	return false
}

// ToastOf extracts the notification carried by a Show command, if any.
func ToastOf(msg tea.Msg) (Toast, bool) {
	if msg, ok := msg.(showMsg); ok {
		return msg.Toast, true
	}
	return Toast{}, false
}

type entry struct {
	id int
	Toast
}

// Model keeps at most Limit toasts, newest first. Every toast expires after
// Duration.
type Model struct {
	Duration time.Duration
	Limit    int

	entries []entry
	nextID  int
}

func New(duration time.Duration) *Model {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Model{Duration: duration, Limit: DefaultLimit}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case showMsg:
		m.nextID++
		id := m.nextID
		logging.Debugf("toast %d: %s", id, msg.Title)
		m.entries = append([]entry{{id: id, Toast: msg.Toast}}, m.entries...)
		if m.Limit > 0 && len(m.entries) > m.Limit {
			m.entries = m.entries[:m.Limit]
		}
		return tea.Tick(m.Duration, func(time.Time) tea.Msg { return expireMsg{id: id} })
	case expireMsg:
		m.entries = slicest.Filter(m.entries, func(e entry) bool { return e.id != msg.id })
	}
	return nil
}

// Visible returns the toasts currently shown, newest first.
func (m *Model) Visible() []Toast {
	return slicest.Map(m.entries, func(e entry) Toast { return e.Toast })
}

var (
	baseStyle = lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22D3EE"))
	destructiveStyle = baseStyle.
				BorderForeground(lipgloss.Color("#F87171")).
				Foreground(lipgloss.Color("#FCA5A5"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func (m *Model) View() string {
	if len(m.entries) == 0 {
		return ""
	}
	views := slicest.Map(m.entries, func(e entry) string {
		style := baseStyle
		if e.Variant == Destructive {
			style = destructiveStyle
		}
		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(e.Title),
			descStyle.Render(e.Description),
		))
	})
	return lipgloss.JoinVertical(lipgloss.Right, views...)
}

// Overlay draws the toasts over the top right corner of base.
func (m *Model) Overlay(base string) string {
	toasts := m.View()
	return util.Overlay(base, toasts, lipgloss.Width(base)-lipgloss.Width(toasts)-1, 1)
}
