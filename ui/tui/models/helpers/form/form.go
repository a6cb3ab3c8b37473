// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form arranges inputs into a keyboard navigable form whose values
// decode into a struct.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/quantumpki/qpki/ui/tui/util"
	"github.com/quantumpki/qpki/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// KeyCapturer is implemented by inputs that consume printable keys while
// focused, so surrounding views must not treat them as shortcuts.
type KeyCapturer interface {
	CapturesKeys() bool
}

type formItem struct {
	id    string
	input FormInput
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	ResetAfterSubmit bool
	// BaseKeyMap is appended to every key map the form announces.
	BaseKeyMap help.KeyMap

	nav         KeyMap
	items       []formItem
	activeIndex int
	focused     bool
	size        util.Size
}

type Opt[T any] func(*Form[T])

func New[T any](opts ...Opt[T]) Form[T] {
	f := Form[T]{nav: NavKeyMap()}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithInput appends an input. Inputs with an empty id are not part of the
// decoded result.
func WithInput[T any](id string, input FormInput) Opt[T] {
	return func(f *Form[T]) {
		f.items = append(f.items, formItem{id: id, input: input})
	}
}

// WithOnSubmit runs fn with the decoded values when a submit button is
// pressed.
func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) Opt[T] {
	return func(f *Form[T]) { f.OnSubmit = fn }
}

func WithResetAfterSubmit[T any]() Opt[T] {
	return func(f *Form[T]) { f.ResetAfterSubmit = true }
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if f.size.Update(msg) || !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.nav.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.nav.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.items, func(item formItem) string {
			return item.input.View(f.size.Width)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.BaseKeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.nav, f.BaseKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// CapturesKeys reports whether the focused input consumes printable keys.
func (f Form[T]) CapturesKeys() bool {
	if !f.focused || len(f.items) == 0 {
		return false
	}
	c, ok := f.items[f.activeIndex].input.(KeyCapturer)
	return ok && c.CapturesKeys()
}

// Items returns the inputs in form order, for views laying them out
// themselves.
func (f Form[T]) Items() []FormInput {
	return slicest.Map(f.items, func(item formItem) FormInput { return item.input })
}

// ActiveID returns the id of the focused input.
func (f Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(
		resetCmd,
		f.OnSubmit(data, err),
	)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	var actionCmd tea.Cmd
	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves the focus by delta inputs, wrapping around, and
// announces the key map of the new input.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
	}
	if !f.focused {
		return nil
	}
	return util.FocusAndAnnounce(f)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id != "" {
			values[item.id] = item.input.Get()
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok && f.items[i].id != "" {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
