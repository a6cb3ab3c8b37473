// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/components/toast"
	"github.com/quantumpki/qpki/ui/tui/timer"
)

// AuthPhase is the state of the authentication tab.
type AuthPhase int

const (
	AuthIdle AuthPhase = iota
	AuthVerifying
	AuthAuthenticated
)

type authTab struct {
	progress      timer.Progress
	bar           progress.Model
	authenticated bool
	keys          AuthKeyMap
}

func newAuthTab(cfg config.DemoConfig) authTab {
	return authTab{
		progress: timer.NewProgress(cfg.AuthStep, cfg.AuthDelay),
		bar:      progress.New(progress.WithGradient("#22D3EE", "#7C3AED"), progress.WithoutPercentage()),
		keys:     newAuthKeyMap(),
	}
}

func (m *Model) AuthPhase() AuthPhase {
	switch {
	case m.auth.progress.Running():
		return AuthVerifying
	case m.auth.authenticated:
		return AuthAuthenticated
	}
	return AuthIdle
}

// AuthProgress returns the verification progress in percent.
func (m *Model) AuthProgress() int { return m.auth.progress.Value() }

func (t *authTab) keyMap(m *Model) help.KeyMap {
	km := t.keys
	phase := m.AuthPhase()
	km.Authenticate.SetEnabled(phase == AuthIdle && m.keyPair != nil)
	km.Reset.SetEnabled(phase == AuthAuthenticated)
	return km
}

func (t *authTab) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch m.AuthPhase() {
	case AuthIdle:
		// authentication requires a key pair
		if key.Matches(msg, t.keys.Authenticate) && m.keyPair != nil {
			logging.Debugf("authentication started with %s", m.keyPair.Fingerprint())
			return t.progress.Start()
		}
	case AuthAuthenticated:
		if key.Matches(msg, t.keys.Reset) {
			t.authenticated = false
		}
	}
	return nil
}

func (t *authTab) update(_ *Model, msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(timer.ProgressTickMsg)
	if !ok || tick.ID != t.progress.ID() {
		return nil, false
	}
	cmd, done := t.progress.Update(msg)
	if !done {
		return cmd, true
	}

	// progress returns to 0 once verified
	t.progress.Stop()
	t.authenticated = true
	logging.Infof("quantum identity verified")
	return toast.Show(i18n.T("toast.auth.title"), i18n.T("toast.auth.description")), true
}

func (t *authTab) view(m *Model, width int) string {
	inner := max(width-4, 1)
	var body string

	switch m.AuthPhase() {
	case AuthIdle:
		action := buttonStyle.Render("⛨ " + i18n.T("auth.authenticate"))
		hint := hintStyle.Render(i18n.T("auth.idle.hint"))
		if m.keyPair == nil {
			action = buttonStyle.Background(lipgloss.Color("238")).Render("⛨ " + i18n.T("auth.authenticate"))
			hint = lipgloss.NewStyle().Foreground(yellow).Render(i18n.T("auth.nokey"))
		}
		body = centered(inner,
			lipgloss.NewStyle().Foreground(cyan).Render("⛨"),
			"",
			titleStyle.Render(i18n.T("auth.idle.headline")),
			hint,
			"",
			action,
		)
	case AuthVerifying:
		body = centered(inner,
			lipgloss.NewStyle().Foreground(cyan).Render("∿"),
			"",
			titleStyle.Render(i18n.T("auth.verifying")),
			t.bar.ViewAs(t.progress.Percent()),
			hintStyle.Render(i18n.T("auth.progress", t.progress.Value())),
		)
	case AuthAuthenticated:
		col := max(inner/3, 12)
		body = centered(inner,
			lipgloss.NewStyle().Foreground(green).Render("✔"),
			"",
			lipgloss.NewStyle().Bold(true).Foreground(green).Render(i18n.T("auth.success")),
			hintStyle.Render(i18n.T("auth.success.hint")),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top,
				panelStyle.Width(col).BorderForeground(green).Render(statColumn(i18n.T("auth.identity.value"), i18n.T("auth.identity"), green, col-4)),
				" ",
				panelStyle.Width(col).BorderForeground(blue).Render(statColumn(i18n.T("auth.level.value"), i18n.T("auth.level"), blue, col-4)),
			),
			"",
			outlineButtonStyle.Padding(0, 2).Render("↻ "+i18n.T("auth.reauth")+"  (r)"),
		)
	}

	return card(i18n.T("auth.title"), width, body)
}
