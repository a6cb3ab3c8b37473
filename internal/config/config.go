// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the application configuration from defaults, the
// qpki.yaml file, QPKI_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the effective application configuration.
type Config struct {
	Language string     `mapstructure:"language" yaml:"language"`
	Log      LogConfig  `mapstructure:"log" yaml:"log"`
	Demo     DemoConfig `mapstructure:"demo" yaml:"demo"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// DemoConfig tunes the simulated workflows of the demo modal.
type DemoConfig struct {
	KeygenStep      int           `mapstructure:"keygen_step" yaml:"keygen_step"`
	KeygenDelay     time.Duration `mapstructure:"keygen_delay" yaml:"keygen_delay"`
	AuthStep        int           `mapstructure:"auth_step" yaml:"auth_step"`
	AuthDelay       time.Duration `mapstructure:"auth_delay" yaml:"auth_delay"`
	MetricsInterval time.Duration `mapstructure:"metrics_interval" yaml:"metrics_interval"`
	ToastDuration   time.Duration `mapstructure:"toast_duration" yaml:"toast_duration"`
	Clipboard       bool          `mapstructure:"clipboard" yaml:"clipboard"`
}

var ErrInvalidDemoConfig = errors.New("invalid demo configuration")

// Validate rejects settings the progress and refresh timers cannot run with.
func (d DemoConfig) Validate() error {
	switch {
	case d.KeygenStep <= 0 || d.KeygenStep > 100:
		return fmt.Errorf("%w: keygen_step must be in 1..100, got %d", ErrInvalidDemoConfig, d.KeygenStep)
	case d.AuthStep <= 0 || d.AuthStep > 100:
		return fmt.Errorf("%w: auth_step must be in 1..100, got %d", ErrInvalidDemoConfig, d.AuthStep)
	case d.KeygenDelay <= 0, d.AuthDelay <= 0:
		return fmt.Errorf("%w: progress delays must be positive", ErrInvalidDemoConfig)
	case d.MetricsInterval <= 0:
		return fmt.Errorf("%w: metrics_interval must be positive", ErrInvalidDemoConfig)
	case d.ToastDuration <= 0:
		return fmt.Errorf("%w: toast_duration must be positive", ErrInvalidDemoConfig)
	}
	return nil
}

// Defaults returns the default value for every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":              "en",
		"log.level":             "info",
		"log.file":              "",
		"demo.keygen_step":      2,
		"demo.keygen_delay":     50 * time.Millisecond,
		"demo.auth_step":        5,
		"demo.auth_delay":       80 * time.Millisecond,
		"demo.metrics_interval": 3 * time.Second,
		"demo.toast_duration":   4 * time.Second,
		"demo.clipboard":        true,
	}
}

// DefaultDemo returns the demo settings used when nothing is configured.
func DefaultDemo() DemoConfig {
	d := Defaults()
	return DemoConfig{
		KeygenStep:      d["demo.keygen_step"].(int),
		KeygenDelay:     d["demo.keygen_delay"].(time.Duration),
		AuthStep:        d["demo.auth_step"].(int),
		AuthDelay:       d["demo.auth_delay"].(time.Duration),
		MetricsInterval: d["demo.metrics_interval"].(time.Duration),
		ToastDuration:   d["demo.toast_duration"].(time.Duration),
		Clipboard:       d["demo.clipboard"].(bool),
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "QuantumPKI")
		default:
			configDir = "/etc/qpki"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "qpki")
	}

	return filepath.Join(configDir, "qpki.yaml"), nil
}

// LoadConfig resolves T from defaults, the config file, environment and the
// flags of cmd, in increasing order of precedence. A missing config file is
// not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("qpki")
	v.SetConfigType("yaml")

	// an explicit --config path wins over the search paths
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("qpki")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c to the user (or system) config path and returns
// the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, writeConfigTo(path, c)
}

func writeConfigTo(path string, c any) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write config file %s: %w", path, err)
	}
	return nil
}
