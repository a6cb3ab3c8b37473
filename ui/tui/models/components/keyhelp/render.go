// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line. Unlike
// help.Model.ShortHelpView it skips disabled bindings without leaving a
// dangling separator and always keeps room for the ellipsis.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return fit(m, items, func(parts []string) string { return strings.Join(parts, "") })
}

// FullHelpView renders one column per group of enabled bindings.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return fit(m, cols, func(parts []string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	})
}

// fit keeps as many parts as m.Width allows and replaces the rest with the
// ellipsis. A zero width means unlimited.
func fit(m help.Model, parts []string, join func([]string) string) string {
	if len(parts) == 0 {
		return ""
	}
	if m.Width <= 0 {
		return join(parts)
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var kept []string
	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= m.Width) || (!last && used+w+tailLen <= m.Width) {
			kept = append(kept, part)
			used += w
			continue
		}
		if used+tailLen <= m.Width {
			kept = append(kept, tail)
		}
		break
	}
	return join(kept)
}
