// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the qpki command line using Cobra. It loads the
// configuration, sets up logging and i18n, and either starts the TUI or runs
// one of the simulated workflows non-interactively.
package cli
