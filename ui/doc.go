// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of qpki: the cobra command line in
// ui/cli and the Bubble Tea program in ui/tui.
package ui
