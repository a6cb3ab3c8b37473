// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

// isolate points the user config dir at a temp dir so real user files are
// never read or written.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)
	c, err := LoadConfig[Config](&cobra.Command{}, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Demo != DefaultDemo() {
		t.Fatalf("demo defaults = %+v, want %+v", c.Demo, DefaultDemo())
	}
	if c.Demo.KeygenDelay != 50*time.Millisecond || c.Demo.MetricsInterval != 3*time.Second {
		t.Fatalf("unexpected timer defaults: %+v", c.Demo)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	body := "language: de\ndemo:\n  keygen_delay: 10ms\n  auth_step: 10\n  clipboard: false\n"
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig[Config](&cobra.Command{}, Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "de" {
		t.Fatalf("language = %q, want de", c.Language)
	}
	if c.Demo.KeygenDelay != 10*time.Millisecond {
		t.Fatalf("keygen_delay = %v", c.Demo.KeygenDelay)
	}
	if c.Demo.AuthStep != 10 || c.Demo.Clipboard {
		t.Fatalf("unexpected demo config: %+v", c.Demo)
	}
	// untouched keys keep their defaults
	if c.Demo.KeygenStep != 2 {
		t.Fatalf("keygen_step = %d, want 2", c.Demo.KeygenStep)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte("language: de\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QPKI_LANGUAGE", "en")
	t.Setenv("QPKI_DEMO_AUTH_DELAY", "1s")

	c, err := LoadConfig[Config](&cobra.Command{}, Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("env should override file, got %q", c.Language)
	}
	if c.Demo.AuthDelay != time.Second {
		t.Fatalf("auth_delay = %v, want 1s", c.Demo.AuthDelay)
	}
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig[Config](cmd, Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "de" {
		t.Fatalf("flag should override defaults, got %q", c.Language)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("language: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig[Config](&cobra.Command{}, Defaults(), &file); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)
	c := Config{Language: "de", Log: LogConfig{Level: "debug"}, Demo: DefaultDemo()}
	c.Demo.AuthStep = 20

	path, err := WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	got, err := LoadConfig[Config](&cobra.Command{}, Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "de" || got.Log.Level != "debug" || got.Demo.AuthStep != 20 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Demo.KeygenDelay != c.Demo.KeygenDelay {
		t.Fatalf("keygen_delay round trip: %v != %v", got.Demo.KeygenDelay, c.Demo.KeygenDelay)
	}
}

func TestDemoConfig_Validate(t *testing.T) {
	if err := DefaultDemo().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := []func(*DemoConfig){
		func(d *DemoConfig) { d.KeygenStep = 0 },
		func(d *DemoConfig) { d.AuthStep = 101 },
		func(d *DemoConfig) { d.KeygenDelay = 0 },
		func(d *DemoConfig) { d.MetricsInterval = -time.Second },
		func(d *DemoConfig) { d.ToastDuration = 0 },
	}
	for i, mutate := range bad {
		d := DefaultDemo()
		mutate(&d)
		if err := d.Validate(); !errors.Is(err, ErrInvalidDemoConfig) {
			t.Fatalf("case %d: expected ErrInvalidDemoConfig, got %v", i, err)
		}
	}
}
