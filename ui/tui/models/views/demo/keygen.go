// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/core/keys"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/components/toast"
	"github.com/quantumpki/qpki/ui/tui/timer"
)

// KeygenPhase is the state of the key generation tab.
type KeygenPhase int

const (
	KeygenIdle KeygenPhase = iota
	KeygenGenerating
	KeygenReady
)

type keygenTab struct {
	progress    timer.Progress
	bar         progress.Model
	showPrivate bool
	keys        KeygenKeyMap
}

func newKeygenTab(cfg config.DemoConfig) keygenTab {
	return keygenTab{
		progress: timer.NewProgress(cfg.KeygenStep, cfg.KeygenDelay),
		bar:      progress.New(progress.WithGradient("#22D3EE", "#7C3AED"), progress.WithoutPercentage()),
		keys:     newKeygenKeyMap(),
	}
}

// KeygenPhase returns the phase of the key generation tab.
func (m *Model) KeygenPhase() KeygenPhase {
	switch {
	case m.keygen.progress.Running():
		return KeygenGenerating
	case m.keyPair != nil:
		return KeygenReady
	}
	return KeygenIdle
}

// KeygenProgress returns the generation progress in percent.
func (m *Model) KeygenProgress() int { return m.keygen.progress.Value() }

// PrivateKeyVisible reports whether the private key is shown in clear.
func (m *Model) PrivateKeyVisible() bool { return m.keygen.showPrivate }

func (t *keygenTab) keyMap(m *Model) help.KeyMap {
	km := t.keys
	phase := m.KeygenPhase()
	km.Generate.SetEnabled(phase == KeygenIdle)
	for _, b := range []*key.Binding{&km.CopyPublic, &km.CopyPrivate, &km.Toggle, &km.Regenerate} {
		b.SetEnabled(phase == KeygenReady)
	}
	return km
}

func (t *keygenTab) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch m.KeygenPhase() {
	case KeygenIdle:
		if key.Matches(msg, t.keys.Generate) {
			logging.Debugf("key generation started")
			return t.progress.Start()
		}
	case KeygenReady:
		switch {
		case key.Matches(msg, t.keys.CopyPublic):
			return copyCmd(i18n.T("label.public_key"), m.keyPair.PublicKey)
		case key.Matches(msg, t.keys.CopyPrivate):
			return copyCmd(i18n.T("label.private_key"), m.keyPair.PrivateKey)
		case key.Matches(msg, t.keys.Toggle):
			t.showPrivate = !t.showPrivate
		case key.Matches(msg, t.keys.Regenerate):
			// back to idle, the next generation replaces the pair wholesale
			m.keyPair = nil
			t.showPrivate = false
		}
	}
	return nil
}

// update consumes the ticks of the generation progress.
func (t *keygenTab) update(m *Model, msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(timer.ProgressTickMsg)
	if !ok || tick.ID != t.progress.ID() {
		return nil, false
	}
	cmd, done := t.progress.Update(msg)
	if !done {
		return cmd, true
	}

	kp := m.gen.Generate()
	m.keyPair = &kp
	t.showPrivate = false
	logging.Infof("generated %s key pair %s", kp.Algorithm, kp.Fingerprint())
	return toast.Show(i18n.T("toast.keygen.title"), i18n.T("toast.keygen.description")), true
}

func (t *keygenTab) view(m *Model, width int) string {
	inner := max(width-4, 1)
	var body string

	switch m.KeygenPhase() {
	case KeygenIdle:
		body = centered(inner,
			lipgloss.NewStyle().Foreground(cyan).Render("⚿"),
			"",
			titleStyle.Render(i18n.T("keygen.idle.headline")),
			hintStyle.Render(i18n.T("keygen.idle.hint")),
			"",
			buttonStyle.Render("⚡ "+i18n.T("keygen.generate")),
		)
	case KeygenGenerating:
		body = centered(inner,
			lipgloss.NewStyle().Foreground(cyan).Render("⚡"),
			"",
			titleStyle.Render(i18n.T("keygen.generating")),
			t.bar.ViewAs(t.progress.Percent()),
			hintStyle.Render(i18n.T("keygen.progress", t.progress.Value())),
		)
	case KeygenReady:
		body = t.viewReady(m.keyPair, inner)
	}

	return card(i18n.T("keygen.title"), width, body)
}

func (t *keygenTab) viewReady(kp *keys.KeyPair, width int) string {
	half := max((width-1)/2, 10)
	private := kp.MaskedPrivateKey()
	if t.showPrivate {
		private = kp.PrivateKey
	}

	keyBox := func(title string, color lipgloss.Color, value, hint string) string {
		return lipgloss.NewStyle().
			Width(half-2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)+"  "+hintStyle.Render(hint),
				codeStyle.Width(half-2).Render(value),
			))
	}
	toggleHint := i18n.T("keygen.hint.show")
	if t.showPrivate {
		toggleHint = i18n.T("keygen.hint.hide")
	}

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		keyBox(i18n.T("keygen.public"), cyan, kp.PublicKey, i18n.T("keygen.hint.copy_public")),
		" ",
		keyBox(i18n.T("keygen.private"), purple, private, toggleHint+" · "+i18n.T("keygen.hint.copy_private")),
	)

	col := max(width/4, 8)
	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		statColumn(kp.Algorithm, i18n.T("keygen.meta.algorithm"), cyan, col),
		statColumn(i18n.T("keygen.meta.keysize.value", kp.KeySize), i18n.T("keygen.meta.keysize"), purple, col),
		statColumn(i18n.T("keygen.meta.level.value"), i18n.T("keygen.meta.level"), blue, col),
		statColumn(i18n.T("keygen.meta.status.value"), i18n.T("keygen.meta.status"), green, col),
	)

	details := hintStyle.Render(fmt.Sprintf("%s: %s · %s: %s",
		i18n.T("keygen.fingerprint"), kp.Fingerprint(),
		i18n.T("keygen.created"), kp.CreatedAt.Format("2006-01-02 15:04:05"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		boxes,
		"",
		meta,
		"",
		details,
		"",
		outlineButtonStyle.Width(width).Align(lipgloss.Center).Render("↻ "+i18n.T("keygen.regenerate")+"  (r)"),
	)
}
