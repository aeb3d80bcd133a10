package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// CollisionSystem resolves self-collision and orb consumption after movement
// Self-collision is checked first; both may fire in the same tick
type CollisionSystem struct {
	ctx   *engine.GameContext
	world *engine.World
	grid  engine.Grid

	// Telemetry
	statLength   *atomic.Int64
	statCrashes  *atomic.Int64
	statConsumed *atomic.Int64
	statCrashed  *atomic.Bool
}

func NewCollisionSystem(ctx *engine.GameContext) engine.System {
	reg := ctx.World.Resources.Status
	s := &CollisionSystem{
		ctx:          ctx,
		world:        ctx.World,
		grid:         ctx.Config.Grid,
		statLength:   reg.Ints.Get("snake.length"),
		statCrashes:  reg.Ints.Get("snake.crashes"),
		statConsumed: reg.Ints.Get("orb.consumed"),
		statCrashed:  reg.Bools.Get("snake.crashed"),
	}
	s.statLength.Store(int64(ctx.World.Components.Body.CountEntities()))
	return s
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() {
	head := s.ctx.MustHead()
	orb := s.ctx.MustOrb()

	headPos, _ := s.world.Components.Position.GetComponent(head)

	segments := s.world.Components.Body.GetAllEntities()
	for _, seg := range segments {
		if segPos, ok := s.world.Components.Position.GetComponent(seg); ok && segPos.Vector == headPos.Vector {
			s.crash(head, headPos, segments)
			break
		}
	}

	orbPos, _ := s.world.Components.Position.GetComponent(orb)
	if orbPos.Vector == headPos.Vector {
		s.consume(head, orb, orbPos)
	}
}

// crash destroys the whole body and marks the head; position and heading are left as is
func (s *CollisionSystem) crash(head core.Entity, at component.PositionComponent, segments []core.Entity) {
	s.world.DestroyBatch(segments)
	s.world.Components.Sprite.SetComponent(head, component.SpriteComponent{Appearance: component.AppearanceCrashed})

	s.statCrashes.Add(1)
	s.statCrashed.Store(true)
	s.statLength.Store(0)

	log.Printf("snake crashed at (%g,%g), %d segments lost", at.X, at.Y, len(segments))

	s.world.PushEvent(event.EventSnakeCrashed, &event.SnakeCrashedPayload{
		At:           at.Vector,
		SegmentsLost: len(segments),
	})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundCrash})
}

// consume relocates the orb and appends a segment where the tail used to be
func (s *CollisionSystem) consume(head, orb core.Entity, orbPos component.PositionComponent) {
	at := orbPos.Vector

	orbPos.Vector = s.grid.RandomCell(s.ctx.RNG())
	s.world.Components.Position.SetComponent(orb, orbPos)

	headComp, _ := s.world.Components.Head.GetComponent(head)
	seg := s.ctx.SpawnSegment(headComp.Vacated)
	length := s.world.Components.Body.CountEntities()

	s.statConsumed.Add(1)
	s.statLength.Store(int64(length))

	log.Printf("orb consumed at (%g,%g), length %d, orb moved to (%g,%g)", at.X, at.Y, length, orbPos.X, orbPos.Y)

	s.world.PushEvent(event.EventOrbConsumed, &event.OrbConsumedPayload{
		At:      at,
		NewOrb:  orbPos.Vector,
		Segment: seg,
		Length:  length,
	})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundChime})
}
