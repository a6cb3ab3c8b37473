// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("Map = %v", got)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("Map(nil) = %v", got)
	}
}

func TestFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}
	even := Filter(in, func(v int) bool { return v%2 == 0 })
	if !slices.Equal(even, []int{2, 4}) {
		t.Fatalf("Filter = %v", even)
	}
	if !slices.Equal(in, []int{1, 2, 3, 4}) {
		t.Fatalf("input modified: %v", in)
	}
}
