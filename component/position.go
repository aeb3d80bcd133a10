package component

import "github.com/joonazan/vec2"

// PositionComponent holds a world-space position in grid units (multiples of cell size)
// Origin is the grid centre, y grows upward
type PositionComponent struct {
	vec2.Vector
}

// NewPosition builds a position from raw coordinates
func NewPosition(x, y float64) PositionComponent {
	return PositionComponent{Vector: vec2.Vector{X: x, Y: y}}
}
