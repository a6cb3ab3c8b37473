// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/buildvars"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/ui/tui/models/components/orbit"
)

// Section identifies a scroll target of the landing page.
type Section int

const (
	SectionHero Section = iota
	SectionFeatures
	SectionDemo
	SectionAbout
	sectionCount
)

// navIndex maps a section to its header nav entry, -1 for the hero.
func (s Section) navIndex() int { return int(s) - 1 }

var (
	cyan   = lipgloss.Color("#22D3EE")
	purple = lipgloss.Color("#A78BFA")
	blue   = lipgloss.Color("#60A5FA")
	gray   = lipgloss.Color("245")

	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8FAFC"))
	accentStyle   = lipgloss.NewStyle().Bold(true).Foreground(purple)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(cyan).MarginBottom(1)
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	hintStyle     = lipgloss.NewStyle().Foreground(gray)
	primaryStyle  = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Foreground(lipgloss.Color("#0F172A")).
			Background(cyan)
	outlineStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Foreground(cyan)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0E7490")).
			Padding(1, 2)
)

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func paragraph(width int, s string) string {
	return center(width, textStyle.Width(min(width, 72)).Align(lipgloss.Center).Render(s))
}

func stat(value, label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Width(18).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
		hintStyle.Render(label),
	))
}

func (m *Model) heroView(width int) string {
	text := lipgloss.JoinVertical(lipgloss.Center,
		brandStyle.Render(i18n.T("landing.hero.title")),
		headlineStyle.Render(i18n.T("landing.hero.headline")),
		accentStyle.Render(i18n.T("landing.hero.era")),
		"",
		textStyle.Render(i18n.T("landing.hero.subtitle")),
		hintStyle.Render(i18n.T("landing.hero.tagline")),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			primaryStyle.Render("▶ "+i18n.T("landing.hero.cta")+"  (enter)"),
			"  ",
			outlineStyle.Render(i18n.T("landing.hero.learn")+" →  (1)"),
		),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			stat("256-bit", i18n.T("landing.stat.encryption"), cyan),
			stat("99.99%", i18n.T("landing.stat.guarantee"), purple),
			stat("∞", i18n.T("landing.stat.future"), blue),
		),
	)

	orbitWidth, _ := orbit.Size()
	if width >= lipgloss.Width(text)+orbitWidth+4 {
		return center(width, lipgloss.JoinHorizontal(lipgloss.Center, text, "    ", m.orbit.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, center(width, m.orbit.View()), center(width, text))
}

func (m *Model) featuresView(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		center(width, headingStyle.Render(i18n.T("landing.features.title"))),
		paragraph(width, i18n.T("landing.features.subtitle")),
		"",
		center(width, m.features.View()),
	)
}

func (m *Model) demoView(width int) string {
	inner := min(width-4, 76)
	panel := panelStyle.Width(inner).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		brandStyle.Render("▶"),
		headlineStyle.Render(i18n.T("landing.demo.panel")),
		hintStyle.Render(i18n.T("landing.demo.panel.hint")),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			primaryStyle.Render("▶ "+i18n.T("landing.demo.launch")+"  (enter)"),
			"  ",
			outlineStyle.Render("⤓ "+i18n.T("landing.demo.sdk")),
			" ",
			outlineStyle.Render("⌥ "+i18n.T("landing.demo.source")),
		),
	))
	return lipgloss.JoinVertical(lipgloss.Left,
		center(width, headingStyle.Render(i18n.T("landing.demo.title"))),
		paragraph(width, i18n.T("landing.demo.subtitle")),
		"",
		center(width, panel),
	)
}

func (m *Model) aboutView(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		center(width, headingStyle.Render(i18n.T("landing.about.title"))),
		paragraph(width, i18n.T("landing.about.text")),
	)
}

func (m *Model) footerView(width int) string {
	links := strings.Join([]string{
		i18n.T("landing.footer.privacy"),
		i18n.T("landing.footer.terms"),
		i18n.T("landing.footer.docs"),
	}, hintStyle.Render("  ·  "))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false).
		BorderForeground(lipgloss.Color("#0E7490")).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			center(width, brandStyle.Render(i18n.T("landing.brand"))),
			center(width, hintStyle.Render(i18n.T("landing.footer.tagline"))),
			center(width, textStyle.Render(links)),
			center(width, hintStyle.Render("qpki "+buildvars.VersionOrDefault("dev"))),
		))
}

// render builds the scrollable page and records where each section starts.
func (m *Model) render(width int) string {
	views := [sectionCount]string{
		m.heroView(width),
		m.featuresView(width),
		m.demoView(width),
		m.aboutView(width),
	}

	var b strings.Builder
	line := 0
	for s, v := range views {
		m.offsets[s] = line
		b.WriteString(v)
		b.WriteString("\n\n\n")
		line += lipgloss.Height(v) + 2
	}
	b.WriteString(m.footerView(width))
	return b.String()
}
