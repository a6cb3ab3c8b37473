// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup renders modal models on top of a child view.
package popup

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/quantumpki/qpki/ui/tui/util"
)

// space taken by the frame around a popup
const (
	frameWidth  = 6
	frameHeight = 2
)

var (
	frameStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22D3EE"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
)

type layer struct {
	model   *util.Model
	onClose CloseFunc
}

// Injector owns a child view and a stack of popups. Keys go to the topmost
// layer only, every other message reaches all layers.
type Injector struct {
	child  *util.Model
	layers []layer
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{child: child}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		cmds := []tea.Cmd{(*m.child).Update(msg)}
		for _, l := range m.layers {
			cmds = append(cmds, (*l.model).Update(m.popupSize()))
		}
		return tea.Batch(cmds...)
	case openMsg:
		return m.open(layer{model: msg.model, onClose: msg.onClose})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		return (*m.top()).Update(msg)
	}

	cmds := []tea.Cmd{(*m.child).Update(msg)}
	for _, l := range m.layers {
		cmds = append(cmds, (*l.model).Update(msg))
	}
	return tea.Batch(cmds...)
}

// Open reports whether at least one popup is shown.
func (m *Injector) Open() bool {
	return len(m.layers) > 0
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return m.size.Shrink(frameWidth, frameHeight).ToMsg()
}

func (m *Injector) View() string {
	view := (*m.child).View()
	if !m.Open() {
		return view
	}

	background := dimStyle.
		Width(m.size.Width).
		Height(m.size.Height).
		Render(ansi.Strip(view))
	return util.OverlayCenter(background, frameStyle.Render((*m.top()).View()))
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.top()).Focus()
}

func (m *Injector) Blur() {
	(*m.top()).Blur()
}

// Destroy tears down every open popup and the child.
func (m *Injector) Destroy() {
	for _, l := range m.layers {
		util.TryDestroyModel(l.model)
	}
	m.layers = nil
	util.TryDestroyModel(m.child)
}

var (
	_ util.Model       = (*Injector)(nil)
	_ util.Destroyable = (*Injector)(nil)
)

func (m *Injector) open(l layer) tea.Cmd {
	m.Blur()
	m.layers = append(m.layers, l)
	return tea.Batch(
		(*l.model).Init(),
		(*l.model).Update(m.popupSize()),
		util.FocusAndAnnounce(m),
	)
}

func (m *Injector) close() tea.Cmd {
	if !m.Open() {
		return nil
	}

	m.Blur()
	closed := m.layers[len(m.layers)-1]
	m.layers = m.layers[:len(m.layers)-1]
	util.TryDestroyModel(closed.model)

	var after tea.Cmd
	if closed.onClose != nil {
		after = closed.onClose(closed.model)
	}
	return tea.Batch(util.FocusAndAnnounce(m), after)
}

func (m *Injector) top() *util.Model {
	if m.Open() {
		return m.layers[len(m.layers)-1].model
	}
	return m.child
}
