package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed simulation tick
	GameUpdateInterval = 250 * time.Millisecond

	// MaxTickLag is how many intervals the scheduler may fall behind before re-anchoring its deadline
	MaxTickLag = 2
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer, power of two
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)
