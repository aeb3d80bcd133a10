package engine

import (
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/core"
)

// Snapshot is a point-in-time copy of the simulation for presentation
// Safe to read without the world lock
type Snapshot struct {
	Tick    int64
	Head    vec2.Vector
	Heading core.Heading
	Crashed bool
	Body    []vec2.Vector // Segment positions in propagation order
	Orb     vec2.Vector
}

// Length returns the body segment count
func (s Snapshot) Length() int {
	return len(s.Body)
}

// Occupied reports whether p is covered by the head or a segment
func (s Snapshot) Occupied(p vec2.Vector) bool {
	if s.Head == p {
		return true
	}
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
