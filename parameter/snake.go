package parameter

// Grid defaults, world units per cell and cells per axis
const (
	CellSize   = 32.0
	GridWidth  = 16
	GridHeight = 16
)

// Snake defaults
const (
	// SnakeSpeed is cells stepped per tick
	SnakeSpeed = 1

	// InitialSegments are seeded trailing below the head at startup
	InitialSegments = 1
)
