package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// Resource holds singleton game resources, initialized during GameContext creation, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged from host services, nil when unavailable
	Audio *AudioResource
}

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of each tick
type TimeResource struct {
	// GameTime is the scheduler's time at tick start
	GameTime time.Time

	// DeltaTime is the fixed tick interval
	DeltaTime time.Duration

	// FrameNumber is the tick index
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource holds the immutable simulation settings
type ConfigResource struct {
	Grid            Grid
	Speed           int // Cells per tick
	InitialSegments int // Body segments seeded at setup
	TickInterval    time.Duration
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
