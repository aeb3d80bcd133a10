package event

import (
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/core"
)

// DirectionRequestPayload carries a mapped heading from the input layer
type DirectionRequestPayload struct {
	Heading core.Heading
}

// OrbConsumedPayload describes one growth event
type OrbConsumedPayload struct {
	At      vec2.Vector // Head position where the orb was eaten
	NewOrb  vec2.Vector // Relocated orb position
	Segment core.Entity // Appended body segment
	Length  int         // Body length after growth
}

// SnakeCrashedPayload describes one self-collision
type SnakeCrashedPayload struct {
	At           vec2.Vector
	SegmentsLost int
}

// SoundRequestPayload asks for a sound effect
type SoundRequestPayload struct {
	SoundType core.SoundType
}
