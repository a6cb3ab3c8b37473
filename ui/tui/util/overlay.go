// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws top over base with its upper left corner at column x and
// row y. Rows of top that fall below base are dropped; base lines shorter
// than x are padded.
func Overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	x, y = max(x, 0), max(y, 0)

	lines := strings.Split(base, "\n")
	for i, row := range strings.Split(top, "\n") {
		if y+i >= len(lines) {
			break
		}
		under := lines[y+i]
		left := ansi.Truncate(under, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(row), "")
		lines[y+i] = left + row + right
	}
	return strings.Join(lines, "\n")
}

// OverlayCenter draws top centered over base, clipped to base's size.
func OverlayCenter(base, top string) string {
	bw, bh := lipgloss.Size(base)
	top = lipgloss.NewStyle().MaxWidth(bw).MaxHeight(bh).Render(top)
	tw, th := lipgloss.Size(top)
	return Overlay(base, top, (bw-tw)/2, (bh-th)/2)
}
