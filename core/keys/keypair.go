// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

const (
	// Algorithm is the algorithm label attached to every generated pair.
	Algorithm = "CRYSTALS-Dilithium"
	// KeySize is the advertised key size in bits.
	KeySize = 3072

	PublicKeyLength  = 128
	PrivateKeyLength = 256

	PublicKeyAlphabet  = "0123456789ABCDEF"
	PrivateKeyAlphabet = "0123456789ABCDEFabcdef"

	maskRune = '•'
)

// KeyPair is a simulated public/private key record. A KeyPair is replaced
// wholesale on regeneration and never mutated in place.
type KeyPair struct {
	PublicKey  string    `json:"public_key" yaml:"public_key"`
	PrivateKey string    `json:"private_key" yaml:"private_key"`
	Algorithm  string    `json:"algorithm" yaml:"algorithm"`
	KeySize    int       `json:"key_size" yaml:"key_size"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Fingerprint returns a short SHA3-256 digest of the public key, grouped for
// display. It is a label for the UI, not a security property.
func (k KeyPair) Fingerprint() string {
	sum := sha3.Sum256([]byte(k.PublicKey))
	raw := hex.EncodeToString(sum[:8])
	groups := make([]string, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		groups = append(groups, raw[i:i+4])
	}
	return strings.Join(groups, ":")
}

// MaskedPrivateKey renders the private key hidden, one bullet per character.
func (k KeyPair) MaskedPrivateKey() string {
	return strings.Repeat(string(maskRune), len(k.PrivateKey))
}

// Generator creates mock key pairs. The zero value is not usable; use
// NewGenerator.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// GeneratorOpt configures a Generator.
type GeneratorOpt func(g *Generator)

// WithRand sets the random source. Tests pass a seeded source.
func WithRand(rng *rand.Rand) GeneratorOpt {
	return func(g *Generator) { g.rng = rng }
}

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) GeneratorOpt {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(opts ...GeneratorOpt) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh key pair.
func (g *Generator) Generate() KeyPair {
	return KeyPair{
		PublicKey:  g.randomString(PublicKeyAlphabet, PublicKeyLength),
		PrivateKey: g.randomString(PrivateKeyAlphabet, PrivateKeyLength),
		Algorithm:  Algorithm,
		KeySize:    KeySize,
		CreatedAt:  g.now(),
	}
}

func (g *Generator) randomString(alphabet string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(alphabet[g.rng.IntN(len(alphabet))])
	}
	return b.String()
}
