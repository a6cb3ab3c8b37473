// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantumpki/qpki/core/monitor"
	"github.com/quantumpki/qpki/internal/i18n"
)

func (a *app) newMonitorCmd() *cobra.Command {
	var (
		ticks    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print refreshing security metrics",
		Long: `Prints the four security metrics and refreshes them every interval
until --ticks refreshes were printed or the command is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", ticks)
			}
			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Demo.MetricsInterval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			mon := monitor.New(nil)
			if err := printMetrics(out, mon.Snapshot()); err != nil {
				return err
			}

			n := 0
			var writeErr error
			err := mon.Run(ctx, interval, func(metrics []monitor.SecurityMetric) bool {
				n++
				fmt.Fprintln(out)
				fmt.Fprintln(out, i18n.T("cli.monitor.tick", map[string]any{"Tick": n}))
				if writeErr = printMetrics(out, metrics); writeErr != nil {
					return false
				}
				return ticks == 0 || n < ticks
			})
			if writeErr != nil {
				return fmt.Errorf("print metrics: %w", writeErr)
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 0, "stop after this many refreshes (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", monitor.DefaultInterval, "refresh interval")
	return cmd
}

func trendArrow(t monitor.Trend) string {
	switch t {
	case monitor.TrendUp:
		return "▲"
	case monitor.TrendDown:
		return "▼"
	}
	return "■"
}

func printMetrics(out io.Writer, metrics []monitor.SecurityMetric) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, m := range metrics {
		fmt.Fprintf(w, "%s\t%.1f%%\t%s\t%s %s\n",
			m.Name, m.Value,
			i18n.T("monitor.status."+string(m.Status)),
			trendArrow(m.Trend), i18n.T("monitor.trend."+string(m.Trend)),
		)
	}
	return w.Flush()
}
