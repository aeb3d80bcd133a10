package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundChime SoundType = iota // Orb consumed
	SoundCrash                  // Self-collision
	SoundTypeCount
)
