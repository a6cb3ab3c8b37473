// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package landing implements the scrollable Quantum PKI landing page that
// launches the demo modal.
package landing

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/components/featurecard"
	"github.com/quantumpki/qpki/ui/tui/models/components/header"
	"github.com/quantumpki/qpki/ui/tui/models/components/orbit"
	"github.com/quantumpki/qpki/ui/tui/models/components/popup"
	"github.com/quantumpki/qpki/ui/tui/models/components/stack"
	windowtitle "github.com/quantumpki/qpki/ui/tui/models/helpers/title"
	"github.com/quantumpki/qpki/ui/tui/models/views/demo"
	"github.com/quantumpki/qpki/ui/tui/util"
)

const maxContentWidth = 110

// demoClosedMsg is sent by the popup once the demo has been unmounted.
type demoClosedMsg struct{}

type Model struct {
	cfg      config.DemoConfig
	demoOpts []demo.Opt
	keys     KeyMap

	viewport viewport.Model
	orbit    *orbit.Model
	features *stack.Model
	offsets  [sectionCount]int
	active   Section

	showDemo bool
	size     util.Size
}

// New creates the landing page. demoOpts are passed to every demo it opens.
func New(cfg config.DemoConfig, demoOpts ...demo.Opt) *Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	return &Model{
		cfg:      cfg,
		demoOpts: demoOpts,
		keys:     newKeyMap(),
		viewport: vp,
		orbit:    orbit.New(),
		features: stack.New(
			stack.WithOrientation(stack.Horizontal),
			stack.WithGap(1),
			stack.WithItem(util.ModelPointer(featurecard.New("⛨",
				i18n.T("landing.feature.auth.title"), i18n.T("landing.feature.auth.description"))), stack.Weighted(1)),
			stack.WithItem(util.ModelPointer(featurecard.New("⚿",
				i18n.T("landing.feature.registration.title"), i18n.T("landing.feature.registration.description"))), stack.Weighted(1)),
			stack.WithItem(util.ModelPointer(featurecard.New("∞",
				i18n.T("landing.feature.future.title"), i18n.T("landing.feature.future.description"))), stack.Weighted(1)),
		),
	}
}

// ShowDemo reports whether a demo opened by the page is still shown.
func (m *Model) ShowDemo() bool { return m.showDemo }

// Active returns the section the viewport currently shows.
func (m *Model) Active() Section { return m.active }

// Offset returns the first line of s.
func (m *Model) Offset(s Section) int { return m.offsets[s] }

// YOffset returns the scroll position.
func (m *Model) YOffset() int { return m.viewport.YOffset }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.orbit.Init(), m.features.Init())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case demoClosedMsg:
		m.showDemo = false
		logging.Debugf("demo closed")
		return windowtitle.Set("")
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.OpenDemo):
			return m.OpenDemo()
		case key.Matches(msg, m.keys.Features):
			return m.ScrollTo(SectionFeatures)
		case key.Matches(msg, m.keys.Demo):
			return m.ScrollTo(SectionDemo)
		case key.Matches(msg, m.keys.About):
			return m.ScrollTo(SectionAbout)
		case key.Matches(msg, m.keys.Top):
			return m.ScrollTo(SectionHero)
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return tea.Batch(cmd, m.syncActive())
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return tea.Batch(cmd, m.syncActive())
	}

	// the orbit keeps spinning while the demo is open on top
	cmd = tea.Batch(m.orbit.Update(msg), m.features.Update(msg))
	m.refresh()
	return cmd
}

// OpenDemo mounts a fresh demo in a popup. It does nothing while one is shown.
func (m *Model) OpenDemo() tea.Cmd {
	if m.showDemo {
		return nil
	}
	m.showDemo = true
	logging.Debugf("opening demo")

	d := demo.New(m.cfg, m.demoOpts...)
	return tea.Batch(
		popup.OpenWithCallback(util.ModelPointer(d), func(*util.Model) tea.Cmd {
			return func() tea.Msg { return demoClosedMsg{} }
		}),
		windowtitle.Set(i18n.T("nav.demo")),
	)
}

// ScrollTo moves the viewport to the first line of s.
func (m *Model) ScrollTo(s Section) tea.Cmd {
	m.refresh()
	m.viewport.SetYOffset(m.offsets[s])
	return m.setActive(s)
}

// syncActive highlights the last section starting at or above the top line.
func (m *Model) syncActive() tea.Cmd {
	s := SectionHero
	for i := SectionFeatures; i < sectionCount; i++ {
		if m.offsets[i] <= m.viewport.YOffset {
			s = i
		}
	}
	if s == m.active {
		return nil
	}
	return m.setActive(s)
}

func (m *Model) setActive(s Section) tea.Cmd {
	m.active = s
	return header.SetActive(s.navIndex())
}

func (m *Model) contentWidth() int {
	return max(min(m.size.Width, maxContentWidth), 20)
}

func (m *Model) resize() {
	m.viewport.Width = m.size.Width
	m.viewport.Height = m.size.Height
	// a zero height lets the cards take their natural height
	m.features.Update(tea.WindowSizeMsg{Width: m.contentWidth() - 4, Height: 0})
	m.refresh()
}

func (m *Model) refresh() {
	w := m.contentWidth()
	content := m.render(w)
	if m.size.Width > w {
		content = center(m.size.Width, content)
	}
	m.viewport.SetContent(content)
}

func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keys
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
