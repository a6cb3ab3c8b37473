// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package timer provides tick driven progress and interval primitives for
// bubbletea models. Every instance has a unique id and every run a tag, so
// ticks that belong to a stopped or restarted run are dropped instead of
// being rescheduled.
package timer

import "sync/atomic"

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}
