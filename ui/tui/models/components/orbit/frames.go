// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package orbit

import (
	"math"
	"strings"
	"sync"
	"time"
)

const (
	gridWidth  = 31
	gridHeight = 11
	frameCount = 240
	fps        = time.Second / 10
)

// ring is one orbit. revs is the number of revolutions per animation loop,
// negative values turn counter clockwise.
type ring struct {
	rx, ry float64
	revs   float64
}

// one loop lasts 24s: outer 12s, medium 8s reversed, inner 6s
var rings = []ring{
	{rx: 14, ry: 5, revs: 2},
	{rx: 9, ry: 3.4, revs: -3},
	{rx: 5, ry: 2, revs: 4},
}

var frames = sync.OnceValue(func() []string {
	out := make([]string, frameCount)
	for f := range out {
		out[f] = renderFrame(f)
	}
	return out
})

func renderFrame(frame int) string {
	grid := make([][]rune, gridHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", gridWidth))
	}
	cx, cy := float64(gridWidth/2), float64(gridHeight/2)

	plot := func(x, y float64, r rune) {
		col, row := int(math.Round(cx+x)), int(math.Round(cy+y))
		if row >= 0 && row < gridHeight && col >= 0 && col < gridWidth {
			grid[row][col] = r
		}
	}

	for _, rg := range rings {
		for step := 0; step < 96; step++ {
			a := 2 * math.Pi * float64(step) / 96
			plot(rg.rx*math.Cos(a), rg.ry*math.Sin(a), '·')
		}
	}
	for _, rg := range rings {
		a := 2*math.Pi*rg.revs*float64(frame)/frameCount - math.Pi/2
		plot(rg.rx*math.Cos(a), rg.ry*math.Sin(a), '●')
	}
	plot(0, 0, '◉')

	lines := make([]string, gridHeight)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
