// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package demo implements the interactive Quantum PKI prototype modal with
// its key generation, encryption, authentication and security monitor
// tabs. All cryptography is simulated.
package demo

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/core/keys"
	"github.com/quantumpki/qpki/core/monitor"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/components/popup"
	"github.com/quantumpki/qpki/ui/tui/models/components/tabs"
	"github.com/quantumpki/qpki/ui/tui/models/components/toast"
	"github.com/quantumpki/qpki/ui/tui/util"
)

const (
	maxWidth    = 110
	headerLines = 4
)

type Opt = func(m *Model)

func WithGenerator(g *keys.Generator) Opt {
	return func(m *Model) { m.gen = g }
}

func WithClipboard(c Clipboard) Opt {
	return func(m *Model) { m.clip = c }
}

// WithSource sets the random source used by the metric refresh.
func WithSource(src monitor.Source) Opt {
	return func(m *Model) { m.src = src }
}

func WithClock(now func() time.Time) Opt {
	return func(m *Model) { m.now = now }
}

// WithOnClose replaces the close request. The default closes the popup the
// demo was opened in.
func WithOnClose(fn func() tea.Cmd) Opt {
	return func(m *Model) { m.onClose = fn }
}

func WithTab(t Tab) Opt {
	return func(m *Model) { m.tabs.Set(int(t)) }
}

// Model is the demo modal. It is mounted by Init and unmounted by Destroy;
// after Destroy every message is ignored.
type Model struct {
	cfg     config.DemoConfig
	gen     *keys.Generator
	clip    Clipboard
	src     monitor.Source
	now     func() time.Time
	onClose func() tea.Cmd

	keys    KeyMap
	tabs    tabs.Model
	keyPair *keys.KeyPair

	keygen keygenTab
	enc    encryptionTab
	auth   authTab
	mon    monitorTab

	mounted bool
	focused bool
	size    util.Size
}

func New(cfg config.DemoConfig, opts ...Opt) *Model {
	m := &Model{
		cfg:     cfg,
		gen:     keys.NewGenerator(),
		clip:    SystemClipboard{},
		src:     monitor.GlobalSource,
		now:     time.Now,
		onClose: popup.Close,
		keys:    newKeyMap(),
		tabs: tabs.New(
			TabKeygen.Title(),
			TabEncryption.Title(),
			TabAuth.Title(),
			TabMonitor.Title(),
		),
	}
	if !cfg.Clipboard {
		m.clip = DisabledClipboard{}
	}
	m.keygen = newKeygenTab(cfg)
	m.enc = newEncryptionTab(m)
	m.auth = newAuthTab(cfg)

	for _, opt := range opts {
		opt(m)
	}
	m.mon = newMonitorTab(cfg, m.src)
	return m
}

// ActiveTab returns the tab currently shown.
func (m *Model) ActiveTab() Tab { return Tab(m.tabs.Active()) }

// KeyPair returns the current key pair or nil.
func (m *Model) KeyPair() *keys.KeyPair { return m.keyPair }

// Mounted reports whether the demo is between Init and Destroy.
func (m *Model) Mounted() bool { return m.mounted }

func (m *Model) Init() tea.Cmd {
	m.mounted = true
	logging.Debugf("demo mounted on tab %s", m.ActiveTab())
	return tea.Batch(m.enc.form.Init(), m.mon.interval.Start())
}

// Destroy stops every timer of the demo.
func (m *Model) Destroy() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.keygen.progress.Stop()
	m.auth.progress.Stop()
	m.mon.interval.Stop()
	logging.Debugf("demo unmounted")
}

var _ util.Destroyable = (*Model)(nil)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case encryptMsg:
		return tea.Batch(m.encrypt(), m.announce())
	case decryptMsg:
		return m.decrypt()
	case copyMsg:
		return m.copy(msg.label, msg.text)
	}

	if cmd, handled := m.keygen.update(m, msg); handled {
		return tea.Batch(cmd, m.announce())
	}
	if cmd, handled := m.auth.update(m, msg); handled {
		return tea.Batch(cmd, m.announce())
	}
	if cmd, handled := m.mon.update(m, msg); handled {
		return cmd
	}

	if m.ActiveTab() == TabEncryption {
		var cmd tea.Cmd
		m.enc.form, cmd = m.enc.form.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	typing := m.ActiveTab() == TabEncryption && m.enc.form.CapturesKeys()

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.onClose()
	case msg.Type == tea.KeyCtrlRight || (!typing && key.Matches(msg, m.keys.NextTab)):
		return m.switchTab(Tab((m.tabs.Active() + 1) % len(tabNames)))
	case msg.Type == tea.KeyCtrlLeft || (!typing && key.Matches(msg, m.keys.PrevTab)):
		return m.switchTab(Tab((m.tabs.Active() + len(tabNames) - 1) % len(tabNames)))
	case !typing && key.Matches(msg, m.keys.Tabs):
		return m.switchTab(Tab(msg.Runes[0] - '1'))
	}

	var cmd tea.Cmd
	switch m.ActiveTab() {
	case TabKeygen:
		cmd = m.keygen.handleKey(m, msg)
	case TabEncryption:
		m.enc.form, cmd = m.enc.form.Update(msg)
		// the form announces itself when the focused field changes, button
		// states may still change while typing
		return tea.Batch(cmd, m.announce())
	case TabAuth:
		cmd = m.auth.handleKey(m, msg)
	}
	return tea.Batch(cmd, m.announce())
}

// SwitchTab activates t and announces its bindings.
func (m *Model) SwitchTab(t Tab) tea.Cmd {
	return m.switchTab(t)
}

func (m *Model) switchTab(t Tab) tea.Cmd {
	prev := m.ActiveTab()
	if !m.tabs.Set(int(t)) {
		return nil
	}
	if prev == TabEncryption {
		m.enc.form.Blur()
	}
	logging.Debugf("demo tab %s -> %s", prev, t)
	return m.announce()
}

// announce publishes the bindings of the active tab while focused.
func (m *Model) announce() tea.Cmd {
	if !m.focused {
		return nil
	}
	cmd, keyMap := m.focusActiveTab()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (m *Model) focusActiveTab() (tea.Cmd, help.KeyMap) {
	switch m.ActiveTab() {
	case TabKeygen:
		return nil, util.MergeKeyMaps(m.keygen.keyMap(m), m.keys)
	case TabEncryption:
		m.enc.form.BaseKeyMap = m.keys
		return m.enc.form.Focus()
	case TabAuth:
		return nil, util.MergeKeyMaps(m.auth.keyMap(m), m.keys)
	}
	return nil, m.keys
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.focusActiveTab()
}

func (m *Model) Blur() {
	m.focused = false
	m.enc.form.Blur()
}

// copy writes text to the clipboard off the update loop and reports the
// outcome as a toast.
func (m *Model) copy(label, text string) tea.Cmd {
	clip := m.clip
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			logging.Warnf("copy %s: %v", label, err)
			return toast.ShowDestructive(
				i18n.T("toast.copy_failed.title"),
				i18n.T("toast.copy_failed.description", label, err),
			)()
		}
		return toast.Show(
			i18n.T("toast.copied.title"),
			i18n.T("toast.copied.description", label),
		)()
	}
}

type copyMsg struct {
	label string
	text  string
}

func copyCmd(label, text string) tea.Cmd {
	return func() tea.Msg { return copyMsg{label: label, text: text} }
}

func (m *Model) width() int {
	return max(min(m.size.Width, maxWidth), 20)
}

func (m *Model) contentHeight() int {
	return max(m.size.Height-headerLines, 5)
}

func (m *Model) resize() {
	w := m.width() - 4
	m.keygen.bar.Width = max(w/2, 10)
	m.auth.bar.Width = max(w/2, 10)
	m.mon.bar.Width = max(w/2-8, 10)
}

func (m *Model) View() string {
	w := m.width()

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T("demo.title")),
		subtitleStyle.Render(i18n.T("demo.subtitle")),
	)
	closeHint := hintStyle.Render(fmt.Sprintf("esc ✕ %s", i18n.T("key.close")))
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(closeHint), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), closeHint)

	var content string
	switch m.ActiveTab() {
	case TabKeygen:
		content = m.keygen.view(m, w)
	case TabEncryption:
		content = m.enc.view(m, w)
	case TabAuth:
		content = m.auth.view(m, w)
	case TabMonitor:
		content = m.mon.view(w)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.tabs.View(w),
		"",
		lipgloss.NewStyle().MaxHeight(m.contentHeight()).MaxWidth(w).Render(content),
	)
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
