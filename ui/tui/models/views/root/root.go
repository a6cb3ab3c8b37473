// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root composes the header, the landing page with its popup layer,
// the key help footer and the toast overlay into the program model.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/buildvars"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/ui/tui/models/components/header"
	"github.com/quantumpki/qpki/ui/tui/models/components/popup"
	"github.com/quantumpki/qpki/ui/tui/models/components/stack"
	"github.com/quantumpki/qpki/ui/tui/models/components/toast"
	windowtitle "github.com/quantumpki/qpki/ui/tui/models/helpers/title"
	"github.com/quantumpki/qpki/ui/tui/models/views/demo"
	"github.com/quantumpki/qpki/ui/tui/models/views/footer"
	"github.com/quantumpki/qpki/ui/tui/models/views/landing"
	"github.com/quantumpki/qpki/ui/tui/util"
)

const title string = "Quantum PKI"

type relayoutMsg struct{}

type Opt = func(m *Model)

// WithDemoOpts passes opts to every demo the program opens.
func WithDemoOpts(opts ...demo.Opt) Opt {
	return func(m *Model) { m.demoOpts = append(m.demoOpts, opts...) }
}

// WithStandaloneDemo opens the demo on tab at start. Closing it quits the
// program.
func WithStandaloneDemo(tab demo.Tab) Opt {
	return func(m *Model) {
		m.standalone = true
		m.startTab = tab
	}
}

type Model struct {
	cfg        config.Config
	demoOpts   []demo.Opt
	standalone bool
	startTab   demo.Tab

	keys         KeyMap
	stack        *stack.Model
	landing      *landing.Model
	footer       *footer.Model
	toaster      *toast.Model
	titleHandler *windowtitle.TitleHandler
}

func New(cfg config.Config, opts ...Opt) *Model {
	m := &Model{
		cfg:     cfg,
		keys:    newKeyMap(),
		toaster: toast.New(cfg.Demo.ToastDuration),
		titleHandler: windowtitle.NewHandler(
			fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | ",
		),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.landing = landing.New(cfg.Demo, m.demoOpts...)
	m.footer = footer.New(&m.keys)
	m.stack = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithFocus(stack.FocusIndex(1)),
		stack.WithItem(util.ModelPointer(header.New(title,
			i18n.T("nav.features"),
			i18n.T("nav.demo"),
			i18n.T("nav.about"),
		)), header.SizeConfig),
		stack.WithItem(util.ModelPointer(popup.NewInjector(util.ModelPointer(m.landing))), stack.Weighted(1)),
		stack.WithItem(util.ModelPointer(m.footer), footer.SizeConfig),
	)
	return m
}

// Landing returns the landing page model.
func (m Model) Landing() *landing.Model { return m.landing }

// Toasts returns the notifications currently shown.
func (m Model) Toasts() []toast.Toast { return m.toaster.Visible() }

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	var demoCmd tea.Cmd
	if m.standalone {
		opts := append([]demo.Opt{
			demo.WithTab(m.startTab),
			demo.WithOnClose(func() tea.Cmd { return tea.Quit }),
		}, m.demoOpts...)
		demoCmd = popup.Open(util.ModelPointer(demo.New(m.cfg.Demo, opts...)))
	}

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd, demoCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Exit):
			m.stack.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
			// the stack re-measures the footer on every message
			return m, m.stack.Update(relayoutMsg{})
		}

		return m, m.stack.Update(msg)
	}
	// notifications are drawn on top of everything
	if toast.IsToastMsg(msg) {
		return m, m.toaster.Update(msg)
	}
	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.toaster.Overlay(m.stack.View())
}

// Model implements tea.Model
var _ tea.Model = Model{}
