// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models along one axis.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/util"
	"github.com/quantumpki/qpki/util/slicest"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Focus selects which item receives key presses. FocusAll sends them to
// nobody and focuses every item at once.
type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

type Model struct {
	Orientation Orientation
	Gap         int

	items   []item
	size    util.Size
	focused Focus
}

type item struct {
	model  *util.Model
	sizing SizeConfig
	size   int
}

type Opt func(*Model)

func WithOrientation(o Orientation) Opt { return func(m *Model) { m.Orientation = o } }

func WithGap(gap int) Opt { return func(m *Model) { m.Gap = gap } }

func WithItem(model *util.Model, sizing SizeConfig) Opt {
	return func(m *Model) {
		m.items = append(m.items, item{model: model, sizing: sizing})
	}
}

func WithFocus(f Focus) Opt { return func(m *Model) { m.focused = f } }

func New(opts ...Opt) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}
	if m.focused != FocusAll() {
		m.focused = util.Clamp(0, m.focused, Focus(len(m.items)-1))
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(m.items, func(it item) tea.Cmd {
		return (*it.model).Init()
	})...)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout()
		return m.resize(nil)
	}

	var cmds []tea.Cmd
	if _, ok := msg.(tea.KeyMsg); ok {
		if m.focused != FocusAll() && len(m.items) > 0 {
			cmds = append(cmds, (*m.items[m.focused].model).Update(msg))
		}
	} else {
		for _, it := range m.items {
			cmds = append(cmds, (*it.model).Update(msg))
		}
	}

	// content sized items may have grown or shrunk
	changed := m.layout()
	if len(changed) > 0 {
		cmds = append(cmds, m.resize(changed))
	}
	return tea.Batch(cmds...)
}

// resize sends each listed item its new area; nil means every item.
func (m *Model) resize(indices []int) tea.Cmd {
	if indices == nil {
		indices = make([]int, len(m.items))
		for i := range indices {
			indices[i] = i
		}
	}
	cmds := make([]tea.Cmd, 0, len(indices))
	for _, i := range indices {
		it := m.items[i]
		area := util.Size{Width: m.size.Width, Height: it.size}
		if m.Orientation == Horizontal {
			area = util.Size{Width: it.size, Height: m.size.Height}
		}
		cmds = append(cmds, (*it.model).Update(area.ToMsg()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	var views []string
	for _, it := range m.items {
		if it.size == 0 {
			continue
		}
		gap := 0
		if len(views) > 0 {
			gap = m.Gap
		}

		style := lipgloss.NewStyle()
		if m.Orientation == Vertical {
			style = style.Width(m.size.Width).MaxWidth(m.size.Width).
				Height(it.size).MaxHeight(it.size + gap).MarginTop(gap)
		} else {
			style = style.Width(it.size).MaxWidth(it.size + gap).
				Height(m.size.Height).MaxHeight(m.size.Height).MarginLeft(gap)
		}
		views = append(views, style.Render((*it.model).View()))
	}

	if m.Orientation == Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	switch {
	case len(m.items) == 0:
		return nil, nil
	case m.focused != FocusAll():
		return (*m.items[m.focused].model).Focus()
	}

	cmds := make([]tea.Cmd, len(m.items))
	keyMaps := make([]help.KeyMap, len(m.items))
	for i, it := range m.items {
		cmds[i], keyMaps[i] = (*it.model).Focus()
	}
	return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
}

func (m *Model) Blur() {
	switch {
	case len(m.items) == 0:
	case m.focused != FocusAll():
		(*m.items[m.focused].model).Blur()
	default:
		for _, it := range m.items {
			(*it.model).Blur()
		}
	}
}

// SetFocus moves key input to another item.
func (m *Model) SetFocus(f Focus) (tea.Cmd, help.KeyMap) {
	m.Blur()
	m.focused = util.Clamp(FocusAll(), f, Focus(len(m.items)-1))
	return m.Focus()
}

// Destroy forwards to every item that owns scheduled work.
func (m *Model) Destroy() {
	for _, it := range m.items {
		util.TryDestroyModel(it.model)
	}
}

// ItemSize returns the length assigned to item i along the stack axis.
func (m *Model) ItemSize(i int) int {
	return m.items[i].size
}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Destroyable = (*Model)(nil)
)
