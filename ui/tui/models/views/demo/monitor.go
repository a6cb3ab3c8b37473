// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/core/monitor"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/ui/tui/timer"
)

type monitorTab struct {
	monitor  *monitor.Monitor
	interval timer.Interval
	bar      progress.Model
}

func newMonitorTab(cfg config.DemoConfig, src monitor.Source) monitorTab {
	return monitorTab{
		monitor:  monitor.New(src),
		interval: timer.NewInterval(cfg.MetricsInterval),
		bar:      progress.New(progress.WithSolidFill("#22D3EE"), progress.WithoutPercentage()),
	}
}

// Metrics returns the current security metrics.
func (m *Model) Metrics() []monitor.SecurityMetric {
	return m.mon.monitor.Snapshot()
}

// MetricsRefreshing reports whether the periodic refresh is scheduled.
func (m *Model) MetricsRefreshing() bool {
	return m.mon.interval.Running()
}

// update refreshes the metrics on every live interval tick, whichever tab is
// shown.
func (t *monitorTab) update(_ *Model, msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(timer.IntervalTickMsg)
	if !ok || tick.ID != t.interval.ID() {
		return nil, false
	}
	cmd, fired := t.interval.Update(msg)
	if fired {
		t.monitor.Tick()
	}
	return cmd, true
}

func statusColor(s monitor.Status) lipgloss.Color {
	switch s {
	case monitor.StatusSecure:
		return green
	case monitor.StatusWarning:
		return yellow
	case monitor.StatusCritical:
		return red
	}
	return gray
}

func trendGlyph(tr monitor.Trend) (string, lipgloss.Color) {
	switch tr {
	case monitor.TrendUp:
		return "▲", green
	case monitor.TrendDown:
		return "▼", red
	}
	return "■", gray
}

func (t *monitorTab) metricCard(sm monitor.SecurityMetric, width int) string {
	color := statusColor(sm.Status)
	inner := max(width-4, 8)

	badge := badgeStyle.Foreground(color).Render(i18n.T("monitor.status." + string(sm.Status)))
	name := titleStyle.Render(sm.Name)
	top := lipgloss.JoinHorizontal(lipgloss.Top, name,
		lipgloss.NewStyle().Width(max(inner-lipgloss.Width(name)-lipgloss.Width(badge), 1)).Render(""),
		badge)

	glyph, trendColor := trendGlyph(sm.Trend)
	value := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f%%", sm.Value))
	trend := lipgloss.NewStyle().Foreground(trendColor).Render(glyph) + " " + hintStyle.Render(i18n.T("monitor.trend."+string(sm.Trend)))
	mid := lipgloss.JoinHorizontal(lipgloss.Top, value,
		lipgloss.NewStyle().Width(max(inner-lipgloss.Width(value)-lipgloss.Width(trend), 1)).Render(""),
		trend)

	bar := t.bar
	bar.Width = inner
	scale := lipgloss.JoinHorizontal(lipgloss.Top, hintStyle.Render("0%"),
		lipgloss.NewStyle().Width(max(inner-6, 1)).Render(""),
		hintStyle.Render("100%"))

	return cardStyle.Width(max(width-2, 1)).Render(lipgloss.JoinVertical(lipgloss.Left,
		top, mid, bar.ViewAs(sm.Value/100), scale,
	))
}

func (t *monitorTab) view(width int) string {
	metrics := t.monitor.Snapshot()
	half := width / 2

	var rows []string
	for i := 0; i < len(metrics); i += 2 {
		row := []string{t.metricCard(metrics[i], half)}
		if i+1 < len(metrics) {
			row = append(row, t.metricCard(metrics[i+1], width-half))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	third := max((width-4)/3, 10)
	panel := func(title, hint string, color lipgloss.Color, glyph string) string {
		return panelStyle.Width(third-2).BorderForeground(color).Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(color).Render(glyph),
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(title),
			hintStyle.Render(hint),
		))
	}
	status := card(i18n.T("monitor.status.title"), width, lipgloss.JoinHorizontal(lipgloss.Top,
		panel(i18n.T("monitor.panel.secure"), i18n.T("monitor.panel.secure.hint"), green, "✔"),
		panel(i18n.T("monitor.panel.monitoring"), i18n.T("monitor.panel.monitoring.hint"), blue, "∿"),
		panel(i18n.T("monitor.panel.response"), i18n.T("monitor.panel.response.hint"), purple, "⚡"),
	))

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, status)...)
}
