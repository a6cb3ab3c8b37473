// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/models/components/stack"
	"github.com/quantumpki/qpki/ui/tui/util"
)

// minPageHeight is the space the page keeps before the header collapses.
const minPageHeight = 10

// SizeConfig gives the header the logo plus its bottom border, or nothing
// on terminals too short to show a page below it.
var SizeConfig stack.SizeConfig = headerSize{}

type headerSize struct{}

func (headerSize) Priority() int { return 10 }

func (headerSize) Calculate(_ util.Model, _ int, total int) int {
	height := lipgloss.Height(logo) + 1
	if total < height+minPageHeight {
		return 0
	}
	return height
}
