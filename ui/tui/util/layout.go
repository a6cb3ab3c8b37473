// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
)

// Size is the last terminal area assigned to a model.
type Size struct {
	Width  int
	Height int
}

// Update records msg when it is a tea.WindowSizeMsg and reports whether it
// was one.
func (s *Size) Update(msg tea.Msg) bool {
	resize, ok := msg.(tea.WindowSizeMsg)
	if ok {
		*s = Size{Width: resize.Width, Height: resize.Height}
	}
	return ok
}

// Shrink returns the area left after reserving dw columns and dh rows.
// Neither dimension goes below zero.
func (s Size) Shrink(dw, dh int) Size {
	return Size{Width: max(s.Width-dw, 0), Height: max(s.Height-dh, 0)}
}

func (s Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.Width, Height: s.Height}
}

// Clamp bounds v to [lo, hi]. hi wins when lo > hi.
func Clamp[T cmp.Ordered](lo, v, hi T) T {
	return min(max(lo, v), hi)
}
