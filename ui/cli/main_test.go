// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/quantumpki/qpki/core/keys"
	"github.com/quantumpki/qpki/core/mockcrypto"
	"github.com/quantumpki/qpki/internal/config"
	"github.com/quantumpki/qpki/ui/tui/models/views/demo"
)

// run executes qpki with args in an isolated config environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKeygen_Text(t *testing.T) {
	out, err := run(t, "keygen")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	for _, want := range []string{keys.Algorithm, "3072-bit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestKeygen_YAML(t *testing.T) {
	out, err := run(t, "keygen", "--output", "yaml")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	var kp keys.KeyPair
	if err := yaml.Unmarshal([]byte(out), &kp); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if len(kp.PublicKey) != 128 || len(kp.PrivateKey) != 256 || kp.KeySize != keys.KeySize {
		t.Fatalf("unexpected key pair %+v", kp)
	}
}

func TestKeygen_UnknownOutput(t *testing.T) {
	if _, err := run(t, "keygen", "-o", "json"); !errors.Is(err, ErrUnknownOutput) {
		t.Fatalf("err = %v, want ErrUnknownOutput", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	msg := "post-quantum _QUANTUM_ENCRYPTED_ hello"
	ciphertext, err := run(t, "encrypt", msg)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	plain, err := run(t, "decrypt", strings.TrimSpace(ciphertext))
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if strings.TrimSpace(plain) != msg {
		t.Fatalf("decrypted %q, want %q", plain, msg)
	}
}

func TestDecrypt_Time(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	at := time.UnixMilli(1760000000000)
	ciphertext, err := mockcrypto.Encrypt("hello", &kp, at)
	if err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "decrypt", "--time", ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	want := "Encrypted at " + at.UTC().Format(time.RFC3339)
	if !strings.HasPrefix(out, "hello\n") || !strings.Contains(out, want) {
		t.Fatalf("output %q should contain the message and %q", out, want)
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	_, err := run(t, "decrypt", "not-a-ciphertext")
	if !errors.Is(err, mockcrypto.ErrMalformedCiphertext) {
		t.Fatalf("err = %v, want ErrMalformedCiphertext", err)
	}
}

func TestEncrypt_EmptyMessage(t *testing.T) {
	if _, err := run(t, "encrypt", ""); !errors.Is(err, mockcrypto.ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestMonitor_Ticks(t *testing.T) {
	out, err := run(t, "monitor", "--ticks", "2", "--interval", "1ms")
	if err != nil {
		t.Fatalf("monitor: %v", err)
	}
	if !strings.Contains(out, "Refresh #2") || strings.Contains(out, "Refresh #3") {
		t.Fatalf("expected exactly two refreshes:\n%s", out)
	}
	if got := strings.Count(out, "Quantum Resistance"); got != 3 {
		t.Fatalf("metric printed %d times, want 3", got)
	}
}

// failAfterTick accepts writes until the first refresh header, then fails.
type failAfterTick struct{ tripped bool }

var errWriteClosed = errors.New("write closed")

func (w *failAfterTick) Write(p []byte) (int, error) {
	if w.tripped {
		return 0, errWriteClosed
	}
	if bytes.Contains(p, []byte("Refresh #")) {
		w.tripped = true
	}
	return len(p), nil
}

func TestMonitor_WriteErrorFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := NewRootCmd()
	w := &failAfterTick{}
	cmd.SetOut(w)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"monitor", "--ticks", "3", "--interval", "1ms"})
	if err := cmd.Execute(); !errors.Is(err, errWriteClosed) {
		t.Fatalf("err = %v, want the write error", err)
	}
}

func TestMonitor_InvalidInterval(t *testing.T) {
	if _, err := run(t, "monitor", "--interval", "0s"); err == nil {
		t.Fatal("a zero interval should be rejected")
	}
}

func TestConfigWrite(t *testing.T) {
	out, err := run(t, "--language", "de", "config", "write")
	if err != nil {
		t.Fatalf("config write: %v", err)
	}
	path := strings.TrimSpace(out)
	if filepath.Base(path) != "qpki.yaml" {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if !strings.Contains(string(data), "language: de") {
		t.Fatalf("config does not carry the flag value:\n%s", data)
	}
}

func TestInvalidDemoConfigFromEnv(t *testing.T) {
	t.Setenv("QPKI_DEMO_KEYGEN_STEP", "0")
	if _, err := run(t, "keygen"); !errors.Is(err, config.ErrInvalidDemoConfig) {
		t.Fatalf("err = %v, want ErrInvalidDemoConfig", err)
	}
}

func TestMissingConfigFlagFile(t *testing.T) {
	if _, err := run(t, "--config", "/does/not/exist.yaml", "keygen"); err == nil {
		t.Fatal("a missing --config file should fail")
	}
}

func TestTUIRequiresTerminal(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return false }

	if _, err := run(t); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err = %v, want ErrNotTerminal", err)
	}
	if _, err := run(t, "demo", "--tab", "monitor"); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err = %v, want ErrNotTerminal", err)
	}
}

func TestDemo_UnknownTab(t *testing.T) {
	if _, err := run(t, "demo", "--tab", "quantum"); !errors.Is(err, demo.ErrUnknownTab) {
		t.Fatalf("err = %v, want ErrUnknownTab", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit || d != buildDate {
		t.Fatalf("expected package defaults for commit and date, got %s %s", c, d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{{Path: modulePath, Version: "v0.3.1"}},
	}
	if v, _, _ := resolveBuildVersion(info); v != "v0.3.1" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
	}
	if v, _, _ := resolveBuildVersion(info); v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}
