// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quantumpki/qpki/buildvars"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
)

const modulePath = "github.com/quantumpki/qpki"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// ErrNotTerminal is returned when the TUI is requested without a terminal.
var ErrNotTerminal = errors.New("qpki: the interactive interface needs a terminal")

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiAnnotation marks commands that hand the terminal to Bubble Tea.
const tuiAnnotation = "qpki/tui"

// app is the state shared by the commands of one root command.
type app struct {
	cfgFile string
	cfg     config.Config
	logs    io.Closer
}

// Execute runs the CLI entrypoint. The main packages call this and handle
// the process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates a fresh command tree, so tests can run commands in
// isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "qpki",
		Short: "Quantum PKI is a prototype for quantum-safe key registration.",
		Long: `Quantum PKI presents a simulated post-quantum PKI: key pair generation,
message encryption, identity authentication and a security monitor.
All cryptography is mocked.

Running without a subcommand launches the interactive landing page.`,
		Version:            composeVersion(resolveBuildVersion(nil)),
		SilenceUsage:       true,
		Annotations:        map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `interface language ("en", "de")`)
	cmd.PersistentFlags().String("log.level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", "", "write logs to this file")

	cmd.AddCommand(
		a.newDemoCmd(),
		a.newKeygenCmd(),
		a.newEncryptCmd(),
		a.newDecryptCmd(),
		a.newMonitorCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and initialises logging and i18n.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := a.cfg.Demo.Validate(); err != nil {
		return err
	}

	// log lines must not reach the alternate screen
	_, interactive := cmd.Annotations[tuiAnnotation]
	a.logs, err = logging.Configure(a.cfg.Log.Level, a.cfg.Log.File, interactive)
	if err != nil {
		return err
	}

	i18n.Init(a.cfg.Language)
	logging.Debugf("config loaded, language %s", a.cfg.Language)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.logs == nil {
		return nil
	}
	return a.logs.Close()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func composeVersion(v, c, d string) string {
	if c != "" && c != "dev" {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// some build paths only list the module as a dependency
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show a commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
