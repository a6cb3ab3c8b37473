// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	"cmp"
	"math"
	"slices"

	"github.com/quantumpki/qpki/ui/tui/util"
)

// SizeConfig decides how much of the stack axis an item gets. Items with a
// lower priority are sized first; the result is clamped to what is left.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining, total int) int
}

type fixed int

// Fixed always claims n cells.
func Fixed(n int) SizeConfig { return fixed(n) }

func (fixed) Priority() int                          { return 0 }
func (f fixed) Calculate(_ util.Model, _, _ int) int { return int(f) }

type weighted int

// Weighted shares whatever the other items left in proportion to weight.
func Weighted(weight int) SizeConfig { return weighted(weight) }

func (weighted) Priority() int                                { return math.MaxInt }
func (weighted) Calculate(_ util.Model, remaining, _ int) int { return remaining }

// layout assigns every item its size and returns the indices whose size
// changed.
func (m *Model) layout() []int {
	total := m.size.Height
	if m.Orientation == Horizontal {
		total = m.size.Width
	}
	remaining := max(total-m.Gap*max(len(m.items)-1, 0), 0)

	order := make([]int, len(m.items))
	weights := 0
	for i, it := range m.items {
		order[i] = i
		if w, ok := it.sizing.(weighted); ok {
			weights += int(w)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(m.items[a].sizing.Priority(), m.items[b].sizing.Priority())
	})

	var changed []int
	for _, i := range order {
		it := &m.items[i]

		n := it.sizing.Calculate(*it.model, remaining, total)
		if w, ok := it.sizing.(weighted); ok && weights > 0 {
			// rounding leftovers go to the last weighted item
			n = remaining * int(w) / weights
			weights -= int(w)
		}
		n = util.Clamp(0, n, remaining)
		remaining -= n

		if n != it.size {
			changed = append(changed, i)
			it.size = n
		}
	}
	return changed
}
