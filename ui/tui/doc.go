// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI: the landing page, the demo modal
// and the components they are built from. The simulated domain logic lives
// in core.
package tui
