// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import "github.com/charmbracelet/lipgloss"

var (
	cyan   = lipgloss.Color("#22D3EE")
	purple = lipgloss.Color("#A78BFA")
	blue   = lipgloss.Color("#60A5FA")
	green  = lipgloss.Color("#4ADE80")
	yellow = lipgloss.Color("#FACC15")
	red    = lipgloss.Color("#F87171")
	gray   = lipgloss.Color("245")
	text   = lipgloss.Color("#F8FAFC")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(text)
	subtitleStyle = lipgloss.NewStyle().Foreground(gray)
	hintStyle     = lipgloss.NewStyle().Foreground(gray)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0E7490")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Align(lipgloss.Center)
	badgeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

func statColumn(value, label string, color lipgloss.Color, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
			hintStyle.Render(label),
		),
	)
}

// card renders body in a bordered box that is exactly width columns wide.
func card(title string, width int, body ...string) string {
	inner := max(width-4, 1)
	parts := append([]string{headingStyle.Render(title), ""}, body...)
	return cardStyle.Width(max(width-2, 1)).Render(
		lipgloss.NewStyle().MaxWidth(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)),
	)
}

func centered(width int, lines ...string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

var (
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Foreground(lipgloss.Color("#0F172A")).
			Background(cyan)
	outlineButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(cyan).
				Foreground(cyan)
)
