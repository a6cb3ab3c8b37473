// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.
// Package monitor holds the simulated security dashboard: a fixed set of
// named metrics refreshed by a bounded random walk.
package monitor
