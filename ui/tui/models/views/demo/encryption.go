// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/core/mockcrypto"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/components/toast"
	"github.com/quantumpki/qpki/ui/tui/models/helpers/form"
	forminput "github.com/quantumpki/qpki/ui/tui/models/helpers/form/input"
)

type encryptionFields struct {
	Message    string `mapstructure:"message"`
	Ciphertext string `mapstructure:"ciphertext"`
}

type (
	encryptMsg struct{}
	decryptMsg struct{}
)

type encryptionTab struct {
	form       form.Form[encryptionFields]
	message    *forminput.Text
	ciphertext *forminput.Text
	decrypted  string
}

func newEncryptionTab(m *Model) encryptionTab {
	t := encryptionTab{
		message:    forminput.NewText(i18n.T("enc.message"), i18n.T("enc.message.placeholder")),
		ciphertext: forminput.NewText(i18n.T("enc.ciphertext"), i18n.T("enc.ciphertext.placeholder")),
	}

	encrypt := forminput.NewButton(i18n.T("enc.encrypt"),
		func() tea.Cmd { return func() tea.Msg { return encryptMsg{} } },
		forminput.WithDisabled(func() bool { return m.keyPair == nil || m.enc.message.Value() == "" }),
	)
	decrypt := forminput.NewButton(i18n.T("enc.decrypt"),
		func() tea.Cmd { return func() tea.Msg { return decryptMsg{} } },
		forminput.WithDisabled(func() bool { return m.keyPair == nil || m.enc.ciphertext.Value() == "" }),
	)
	copyOut := forminput.NewButton(i18n.T("enc.copy"),
		func() tea.Cmd { return copyCmd(i18n.T("label.encrypted_message"), m.enc.ciphertext.Value()) },
		forminput.WithDisabled(func() bool { return m.enc.ciphertext.Value() == "" }),
	)

	t.form = form.New(
		form.WithInput[encryptionFields]("message", t.message),
		form.WithInput[encryptionFields]("", encrypt),
		form.WithInput[encryptionFields]("ciphertext", t.ciphertext),
		form.WithInput[encryptionFields]("", decrypt),
		form.WithInput[encryptionFields]("", copyOut),
	)
	return t
}

// Ciphertext returns the content of the ciphertext input.
func (m *Model) Ciphertext() string { return m.enc.ciphertext.Value() }

// Decrypted returns the last successfully decrypted message.
func (m *Model) Decrypted() string { return m.enc.decrypted }

// SetMessage replaces the content of the message input.
func (m *Model) SetMessage(s string) { m.enc.message.Set(s) }

// SetCiphertext replaces the content of the ciphertext input.
func (m *Model) SetCiphertext(s string) { m.enc.ciphertext.Set(s) }

func (m *Model) encrypt() tea.Cmd {
	fields, err := m.enc.form.Get()
	if err != nil {
		logging.Errorf("read encryption form: %v", err)
		return nil
	}

	ciphertext, err := mockcrypto.Encrypt(fields.Message, m.keyPair, m.now())
	if err != nil {
		// the button is disabled in this case
		logging.Debugf("encrypt skipped: %v", err)
		return nil
	}

	fields.Ciphertext = ciphertext
	if err := m.enc.form.Set(fields); err != nil {
		logging.Errorf("write encryption form: %v", err)
		return nil
	}
	return toast.Show(i18n.T("toast.encrypted.title"), i18n.T("toast.encrypted.description"))
}

func (m *Model) decrypt() tea.Cmd {
	plain, err := mockcrypto.Decrypt(m.enc.ciphertext.Value(), m.keyPair)
	switch {
	case errors.Is(err, mockcrypto.ErrEmptyCiphertext), errors.Is(err, mockcrypto.ErrNoKeyPair):
		logging.Debugf("decrypt skipped: %v", err)
		return nil
	case err != nil:
		logging.Warnf("decrypt: %v", err)
		return toast.ShowDestructive(i18n.T("toast.decrypt_failed.title"), i18n.T("toast.decrypt_failed.description"))
	}

	m.enc.decrypted = plain
	return toast.Show(i18n.T("toast.decrypted.title"), i18n.T("toast.decrypted.description"))
}

func (t *encryptionTab) view(m *Model, width int) string {
	half := width / 2
	inner := max(half-4, 8)
	items := t.form.Items()

	output := func(title, value string, color lipgloss.Color) string {
		if value == "" {
			return ""
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			hintStyle.Render(title),
			lipgloss.NewStyle().Width(inner).Foreground(color).Render(value),
		)
	}

	left := card(i18n.T("enc.encrypt.title"), half,
		items[0].View(inner),
		items[1].View(inner),
		output(i18n.T("enc.output"), t.ciphertext.Value(), cyan),
	)
	right := card(i18n.T("enc.decrypt.title"), width-half,
		items[2].View(inner),
		lipgloss.JoinHorizontal(lipgloss.Top, items[3].View(0), " ", items[4].View(0)),
		output(i18n.T("enc.decrypted"), t.decrypted, green),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.keyPair == nil {
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(yellow).Render("⚠ "+i18n.T("enc.nokey")),
			body,
		)
	}
	return body
}
