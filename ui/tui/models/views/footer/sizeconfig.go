// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumpki/qpki/ui/tui/models/components/stack"
	"github.com/quantumpki/qpki/ui/tui/util"
)

// SizeConfig sizes the footer after the header and before the page, so an
// expanded help table always fits.
var SizeConfig stack.SizeConfig = footerSize{}

type footerSize struct{}

func (footerSize) Priority() int { return 20 }

func (footerSize) Calculate(model util.Model, remaining int, _ int) int {
	footer, ok := model.(*Model)
	if !ok {
		return min(2, remaining)
	}
	// help rows plus the top border
	return min(lipgloss.Height(footer.keysView())+1, remaining)
}
