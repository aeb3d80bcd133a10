package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityDirection = 0   // Event-driven intake, no tick work
	PriorityMovement  = 10  // Head step and body propagation
	PriorityCollision = 20  // After movement, consumes the updated positions
	PriorityAudio     = 100 // Event-driven playback, no tick work
)
