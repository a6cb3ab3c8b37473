// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.
// Package keys generates the simulated post-quantum key pairs shown by the
// prototype. The keys are random strings with fixed metadata; they carry no
// cryptographic meaning and are UI agnostic.
package keys
