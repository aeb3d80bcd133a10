package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// GameContext holds the ECS world and the snake's singleton handles
type GameContext struct {
	// ===== Immutable After Init =====

	World      *World
	Config     *ConfigResource
	eventQueue *event.EventQueue // Lock-free MPSC queue
	rng        RandomSource      // Accessed only under world lock

	// ===== Set once by Setup, read under world lock =====

	HeadEntity core.Entity
	OrbEntity  core.Entity

	// ===== Atomic =====

	TickNumber atomic.Int64 // Simulation tick counter; incremented by ClockScheduler
}

// NewGameContext wires the world's resources and event source
// Entities are not created until Setup
func NewGameContext(world *World, cfg ConfigResource, rng RandomSource, clock TimeSource) *GameContext {
	ctx := &GameContext{
		World:      world,
		Config:     &cfg,
		eventQueue: event.NewEventQueue(),
		rng:        rng,
	}

	world.SetEventMetadata(ctx.eventQueue, &ctx.TickNumber)

	// Status registry first, systems cache metric pointers from it
	world.Resources.Status = status.NewRegistry()
	world.Resources.Config = ctx.Config
	world.Resources.Time = &TimeResource{
		GameTime:    clock.Now(),
		DeltaTime:   cfg.TickInterval,
		FrameNumber: 0,
	}
	world.Resources.Event = &EventQueueResource{Queue: ctx.eventQueue}

	return ctx
}

// Setup creates the head, the seeded body and the orb
// Head starts at the origin facing up, seed segments trail below it
func (ctx *GameContext) Setup() {
	if ctx.HeadEntity != 0 {
		panic(fmt.Errorf("game context already set up (head %d)", ctx.HeadEntity))
	}

	grid := ctx.Config.Grid
	w := ctx.World

	origin := vec2.Vector{}
	ctx.HeadEntity = w.CreateEntity()
	w.Components.Position.SetComponent(ctx.HeadEntity, component.PositionComponent{Vector: origin})
	w.Components.Sprite.SetComponent(ctx.HeadEntity, component.SpriteComponent{Appearance: component.AppearanceNormal})

	trail := origin
	for i := 0; i < ctx.Config.InitialSegments; i++ {
		trail = grid.Step(trail, core.HeadingDown, 1)
		ctx.SpawnSegment(trail)
	}

	w.Components.Head.SetComponent(ctx.HeadEntity, component.HeadComponent{
		Heading: core.HeadingUp,
		Vacated: trail,
	})

	ctx.OrbEntity = w.CreateEntity()
	w.Components.Orb.SetComponent(ctx.OrbEntity, component.OrbComponent{})
	w.Components.Position.SetComponent(ctx.OrbEntity, component.PositionComponent{Vector: grid.RandomCell(ctx.rng)})
}

// MustHead returns the head entity, panicking when it no longer exists
func (ctx *GameContext) MustHead() core.Entity {
	if !ctx.World.Components.Head.HasEntity(ctx.HeadEntity) || !ctx.World.Components.Position.HasEntity(ctx.HeadEntity) {
		panic(fmt.Errorf("snake head %d missing", ctx.HeadEntity))
	}
	return ctx.HeadEntity
}

// MustOrb returns the orb entity, panicking when it no longer exists
func (ctx *GameContext) MustOrb() core.Entity {
	if !ctx.World.Components.Orb.HasEntity(ctx.OrbEntity) || !ctx.World.Components.Position.HasEntity(ctx.OrbEntity) {
		panic(fmt.Errorf("orb %d missing", ctx.OrbEntity))
	}
	return ctx.OrbEntity
}

// RNG returns the random source used for orb placement
func (ctx *GameContext) RNG() RandomSource {
	return ctx.rng
}

// SpawnSegment appends a body segment at pos
func (ctx *GameContext) SpawnSegment(pos vec2.Vector) core.Entity {
	w := ctx.World
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{Index: w.Components.Body.CountEntities()})
	w.Components.Position.SetComponent(e, component.PositionComponent{Vector: pos})
	return e
}

// BodySegments returns body entities in propagation order
func (ctx *GameContext) BodySegments() []core.Entity {
	return ctx.World.Components.Body.GetAllEntities()
}

// PushDirection queues a turn request for the next dispatch
func (ctx *GameContext) PushDirection(h core.Heading) {
	ctx.World.PushEvent(event.EventDirectionRequest, &event.DirectionRequestPayload{Heading: h})
}

// Snapshot copies the simulation state under the world lock
func (ctx *GameContext) Snapshot() Snapshot {
	var snap Snapshot
	ctx.World.RunSafe(func() {
		snap = ctx.SnapshotLocked()
	})
	return snap
}

// SnapshotLocked copies the simulation state, caller holds the world lock
func (ctx *GameContext) SnapshotLocked() Snapshot {
	w := ctx.World
	snap := Snapshot{Tick: ctx.TickNumber.Load()}

	if pos, ok := w.Components.Position.GetComponent(ctx.HeadEntity); ok {
		snap.Head = pos.Vector
	}
	if head, ok := w.Components.Head.GetComponent(ctx.HeadEntity); ok {
		snap.Heading = head.Heading
	}
	if sprite, ok := w.Components.Sprite.GetComponent(ctx.HeadEntity); ok {
		snap.Crashed = sprite.Appearance == component.AppearanceCrashed
	}
	if pos, ok := w.Components.Position.GetComponent(ctx.OrbEntity); ok {
		snap.Orb = pos.Vector
	}

	segments := w.Components.Body.GetAllEntities()
	snap.Body = make([]vec2.Vector, 0, len(segments))
	for _, e := range segments {
		if pos, ok := w.Components.Position.GetComponent(e); ok {
			snap.Body = append(snap.Body, pos.Vector)
		}
	}
	return snap
}
