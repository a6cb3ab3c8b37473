// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func onlyFrom(s, alphabet string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func TestGenerate_LengthsAndAlphabets(t *testing.T) {
	g := NewGenerator(WithRand(rand.New(rand.NewPCG(1, 2))))
	for i := 0; i < 50; i++ {
		kp := g.Generate()
		if len(kp.PublicKey) != PublicKeyLength {
			t.Fatalf("public key length = %d, want %d", len(kp.PublicKey), PublicKeyLength)
		}
		if len(kp.PrivateKey) != PrivateKeyLength {
			t.Fatalf("private key length = %d, want %d", len(kp.PrivateKey), PrivateKeyLength)
		}
		if !onlyFrom(kp.PublicKey, PublicKeyAlphabet) {
			t.Fatalf("public key has unexpected characters: %s", kp.PublicKey)
		}
		if !onlyFrom(kp.PrivateKey, PrivateKeyAlphabet) {
			t.Fatalf("private key has unexpected characters: %s", kp.PrivateKey)
		}
	}
}

func TestGenerate_Metadata(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := NewGenerator(WithClock(func() time.Time { return fixed }))
	kp := g.Generate()
	if kp.Algorithm != "CRYSTALS-Dilithium" {
		t.Fatalf("unexpected algorithm %q", kp.Algorithm)
	}
	if kp.KeySize != 3072 {
		t.Fatalf("unexpected key size %d", kp.KeySize)
	}
	if !kp.CreatedAt.Equal(fixed) {
		t.Fatalf("CreatedAt = %v, want %v", kp.CreatedAt, fixed)
	}
}

func TestGenerate_ReplacedWholesale(t *testing.T) {
	g := NewGenerator(WithRand(rand.New(rand.NewPCG(7, 7))))
	a, b := g.Generate(), g.Generate()
	if a.PublicKey == b.PublicKey || a.PrivateKey == b.PrivateKey {
		t.Fatalf("consecutive key pairs should differ")
	}
}

func TestMaskedPrivateKey(t *testing.T) {
	kp := NewGenerator().Generate()
	masked := kp.MaskedPrivateKey()
	if utf8.RuneCountInString(masked) != PrivateKeyLength {
		t.Fatalf("masked length = %d runes", utf8.RuneCountInString(masked))
	}
	if strings.Trim(masked, "•") != "" {
		t.Fatalf("masked key contains non-mask characters: %q", masked)
	}
}

func TestFingerprint_StableAndGrouped(t *testing.T) {
	kp := KeyPair{PublicKey: strings.Repeat("A", PublicKeyLength)}
	fp := kp.Fingerprint()
	if fp != kp.Fingerprint() {
		t.Fatalf("fingerprint not stable")
	}
	parts := strings.Split(fp, ":")
	if len(parts) != 4 {
		t.Fatalf("expected 4 groups, got %q", fp)
	}
	for _, p := range parts {
		if len(p) != 4 {
			t.Fatalf("unexpected group %q in %q", p, fp)
		}
	}
	other := KeyPair{PublicKey: strings.Repeat("B", PublicKeyLength)}
	if other.Fingerprint() == fp {
		t.Fatalf("different keys should have different fingerprints")
	}
}
