package engine

import (
	"math"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/core"
)

// RandomSource yields uniform integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// Grid describes the toroidal playfield
// Coordinates are world units with the origin at the grid centre; cell i on an axis sits at (i - size/2) * CellSize
type Grid struct {
	CellSize float64
	Width    int // Cells
	Height   int // Cells
}

// Extent returns the playfield size in world units
func (g Grid) Extent() (w, h float64) {
	return float64(g.Width) * g.CellSize, float64(g.Height) * g.CellSize
}

// Step moves p by cells along heading and wraps the moved axis into [-extent/2, extent/2)
func (g Grid) Step(p vec2.Vector, heading core.Heading, cells int) vec2.Vector {
	dx, dy := heading.Delta()
	extentW, extentH := g.Extent()

	if dx != 0 {
		p.X = wrapAxis(p.X+float64(dx*cells)*g.CellSize, extentW)
	}
	if dy != 0 {
		p.Y = wrapAxis(p.Y+float64(dy*cells)*g.CellSize, extentH)
	}
	return p
}

// wrapAxis folds v into [-extent/2, extent/2)
func wrapAxis(v, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	half := extent / 2
	for v >= half {
		v -= extent
	}
	for v < -half {
		v += extent
	}
	return v
}

// Contains reports whether p lies inside the wrapped coordinate range on both axes
func (g Grid) Contains(p vec2.Vector) bool {
	w, h := g.Extent()
	return p.X >= -w/2 && p.X < w/2 && p.Y >= -h/2 && p.Y < h/2
}

// Aligned reports whether p sits exactly on a cell origin
func (g Grid) Aligned(p vec2.Vector) bool {
	if g.CellSize <= 0 {
		return false
	}
	offX := float64(g.Width/2) * g.CellSize
	offY := float64(g.Height/2) * g.CellSize
	return math.Mod(p.X+offX, g.CellSize) == 0 && math.Mod(p.Y+offY, g.CellSize) == 0
}

// RandomCell picks one cell uniformly per axis
// Occupancy is not considered
func (g Grid) RandomCell(rng RandomSource) vec2.Vector {
	return vec2.Vector{
		X: float64(rng.Intn(g.Width)-g.Width/2) * g.CellSize,
		Y: float64(rng.Intn(g.Height)-g.Height/2) * g.CellSize,
	}
}

// ToCell maps a world position to screen cell coordinates, row 0 at the top
// ok is false when p falls outside the grid
func (g Grid) ToCell(p vec2.Vector) (col, row int, ok bool) {
	col = int(math.Round(p.X/g.CellSize)) + g.Width/2
	j := int(math.Round(p.Y/g.CellSize)) + g.Height/2
	row = g.Height - 1 - j
	ok = col >= 0 && col < g.Width && j >= 0 && j < g.Height
	return col, row, ok
}
