package component

import (
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/core"
)

// HeadComponent is the singleton snake head
type HeadComponent struct {
	Heading core.Heading

	// Vacated is the trail position left by the last movement pass:
	// the tail's pre-move position, or the head's own when the body is empty
	// Growth appends the new segment here
	Vacated vec2.Vector
}
