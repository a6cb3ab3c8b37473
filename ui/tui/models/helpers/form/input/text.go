// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/ui/tui/models/helpers/form"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = placeholder
	// a static cursor keeps the model free of blink commands
	input.Cursor.SetMode(cursor.CursorStatic)

	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("key.next_field")),
			),
		},
		input: input,
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) CapturesKeys() bool {
	return t.focused
}

func (t *Text) Value() string {
	return t.input.Value()
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if !t.focused {
		return nil, form.ActionNone
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Bold(true)
	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true).BorderForeground(lipgloss.Color("238"))
	focusedFieldStyle = fieldStyle.BorderForeground(lipgloss.Color("#22D3EE"))
)

func (t *Text) View(width int) string {
	label, field := labelStyle, fieldStyle
	if t.focused {
		label, field = focusedLabelStyle, focusedFieldStyle
	}

	// prompt and cursor take three columns
	t.input.Width = max(width-3, 1)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render(t.Label),
		field.Width(max(width, 1)).Render(t.input.View()),
	)
}

var _ form.FormInput = (*Text)(nil)
var _ form.KeyCapturer = (*Text)(nil)
