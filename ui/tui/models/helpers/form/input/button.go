// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/models/helpers/form"
)

// Button runs OnPress when activated. Without OnPress it submits the form.
type Button struct {
	Label    string
	OnPress  func() tea.Cmd
	Disabled func() bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

type ButtonOpt = func(*Button)

// WithDisabled makes the button inert while fn reports true.
func WithDisabled(fn func() bool) ButtonOpt {
	return func(b *Button) { b.Disabled = fn }
}

func NewButton(label string, onPress func() tea.Cmd, opts ...ButtonOpt) *Button {
	b := &Button{
		Label:   label,
		OnPress: onPress,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("238")),
		BlurredStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0E7490")).
			Foreground(lipgloss.Color("250")),
		FocusedStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22D3EE")).
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Button) disabled() bool {
	return b.Disabled != nil && b.Disabled()
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	keyMap := b.KeyMap
	keyMap.Click.SetEnabled(!b.disabled())
	return nil, keyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, b.KeyMap.Click) && !b.disabled() {
		if b.OnPress != nil {
			return b.OnPress(), form.ActionNone
		}
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	switch {
	case b.disabled():
		style = b.DisabledStyle
	case b.focused:
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
