// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/quantumpki/qpki/ui/tui"
	"github.com/quantumpki/qpki/ui/tui/models/views/demo"
	"github.com/quantumpki/qpki/ui/tui/models/views/root"
)

func (a *app) runTUI(cmd *cobra.Command, opts ...root.Opt) error {
	if !isTerminal() {
		return ErrNotTerminal
	}
	if !a.cfg.Demo.Clipboard {
		opts = append(opts, root.WithDemoOpts(demo.WithClipboard(demo.DisabledClipboard{})))
	}
	return tui.Run(cmd.Context(), a.cfg, opts...)
}

func (a *app) newDemoCmd() *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:         "demo",
		Short:       "Open the interactive demo directly",
		Long:        `Opens the Quantum PKI prototype without the landing page. Closing the demo exits.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := demo.ParseTab(tab)
			if err != nil {
				return err
			}
			return a.runTUI(cmd, root.WithStandaloneDemo(t))
		},
	}
	cmd.Flags().StringVar(&tab, "tab", demo.TabKeygen.String(), "initial tab (keygen, encryption, auth, monitor)")
	return cmd
}
