package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// ScriptedRand replays a fixed sequence of values, cycling when exhausted
// Each value is reduced modulo n
type ScriptedRand struct {
	Values []int
	next   int
	Calls  int
}

// Intn returns the next scripted value reduced into [0, n)
func (r *ScriptedRand) Intn(n int) int {
	r.Calls++
	if len(r.Values) == 0 || n <= 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return ((v % n) + n) % n
}

// Script replaces the sequence, restarts from its first value and zeroes Calls
func (r *ScriptedRand) Script(values ...int) {
	r.Values = values
	r.next = 0
	r.Calls = 0
}

// DefaultTestConfig returns the stock 16x16 grid with cell size 32
func DefaultTestConfig() ConfigResource {
	return ConfigResource{
		Grid: Grid{
			CellSize: parameter.CellSize,
			Width:    parameter.GridWidth,
			Height:   parameter.GridHeight,
		},
		Speed:           parameter.SnakeSpeed,
		InitialSegments: parameter.InitialSegments,
		TickInterval:    parameter.GameUpdateInterval,
	}
}

// NewTestGameContext creates a GameContext on a fresh world with a mock clock
// Setup is not called so tests can place entities themselves
func NewTestGameContext(cfg ConfigResource, rng RandomSource) (*GameContext, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewGameContext(NewWorld(), cfg, rng, clock)
	return ctx, clock
}
