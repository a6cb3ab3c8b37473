// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/logging"
	"github.com/quantumpki/qpki/ui/tui/models/views/root"
)

// Run starts the program and blocks until it quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, opts ...root.Opt) error {
	logging.Infof("starting tui")
	_, err := tea.NewProgram(
		root.New(cfg, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	return err
}
