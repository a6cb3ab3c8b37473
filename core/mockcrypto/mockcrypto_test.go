// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package mockcrypto

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/quantumpki/qpki/core/keys"
)

func TestRoundTrip(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	now := time.UnixMilli(1760000000123)

	messages := []string{
		"hello",
		"a",
		"with spaces and punctuation!?",
		"ünïcødé ✓ 量子",
		"contains" + Marker + "the marker",
		Marker,
		"trailing" + Marker + "123",
		"line one\nline two",
		"\xff\xfe raw bytes",
		"\x00",
	}
	for _, m := range messages {
		ct, err := Encrypt(m, &kp, now)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", m, err)
		}
		got, err := Decrypt(ct, &kp)
		if err != nil {
			t.Fatalf("Decrypt(Encrypt(%q)) error: %v", m, err)
		}
		if got != m {
			t.Fatalf("round trip mismatch: got %q want %q", got, m)
		}
	}
}

func TestEncrypt_Preconditions(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	if _, err := Encrypt("", &kp, time.Now()); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := Encrypt("x", nil, time.Now()); !errors.Is(err, ErrNoKeyPair) {
		t.Fatalf("expected ErrNoKeyPair, got %v", err)
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	cases := map[string]string{
		"not base64":        "%%%not-base64%%%",
		"no marker":         base64.StdEncoding.EncodeToString([]byte("just some text")),
		"missing timestamp": base64.StdEncoding.EncodeToString([]byte("msg" + Marker)),
		"bad timestamp":     base64.StdEncoding.EncodeToString([]byte("msg" + Marker + "soon")),
		"negative stamp":    base64.StdEncoding.EncodeToString([]byte("msg" + Marker + "-5")),
		"signed stamp":      base64.StdEncoding.EncodeToString([]byte("msg" + Marker + "+7")),
		"spaced stamp":      base64.StdEncoding.EncodeToString([]byte("msg" + Marker + " 12")),
		"binary no marker":  base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decrypt(in, &kp)
			if !errors.Is(err, ErrMalformedCiphertext) {
				t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
			}
		})
	}
}

func TestDecrypt_Preconditions(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	if _, err := Decrypt("   ", &kp); !errors.Is(err, ErrEmptyCiphertext) {
		t.Fatalf("expected ErrEmptyCiphertext, got %v", err)
	}
	if _, err := Decrypt("aGVsbG8=", nil); !errors.Is(err, ErrNoKeyPair) {
		t.Fatalf("expected ErrNoKeyPair, got %v", err)
	}
}

func TestTimestamp(t *testing.T) {
	kp := keys.NewGenerator().Generate()
	now := time.UnixMilli(1760000000999)
	ct, err := Encrypt("msg", &kp, now)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := Timestamp(ct)
	if err != nil {
		t.Fatalf("Timestamp error: %v", err)
	}
	if !ts.Equal(now) {
		t.Fatalf("Timestamp = %v, want %v", ts, now)
	}
}

func TestTimestamp_Malformed(t *testing.T) {
	in := base64.StdEncoding.EncodeToString([]byte("msg" + Marker + "-5"))
	if _, err := Timestamp(in); !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
	}
}
