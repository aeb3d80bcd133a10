package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// DirectionSystem applies turn requests to the head heading
// Requests are applied in arrival order, each checked against the heading left by the previous one
// An exact reverse is dropped silently
type DirectionSystem struct {
	ctx   *engine.GameContext
	world *engine.World

	// Telemetry
	statTurns    *atomic.Int64
	statRejected *atomic.Int64
}

func NewDirectionSystem(ctx *engine.GameContext) engine.System {
	reg := ctx.World.Resources.Status
	return &DirectionSystem{
		ctx:          ctx,
		world:        ctx.World,
		statTurns:    reg.Ints.Get("direction.turns"),
		statRejected: reg.Ints.Get("direction.rejected"),
	}
}

func (s *DirectionSystem) Name() string {
	return "direction"
}

func (s *DirectionSystem) Priority() int {
	return parameter.PriorityDirection
}

func (s *DirectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDirectionRequest,
	}
}

func (s *DirectionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventDirectionRequest {
		return
	}
	if payload, ok := ev.Payload.(*event.DirectionRequestPayload); ok {
		s.Turn(payload.Heading)
	}
}

// Update implements System interface (no tick-based logic)
func (s *DirectionSystem) Update() {}

// Turn sets the head heading unless it is the exact reverse of the current one
// Caller must hold the world lock
func (s *DirectionSystem) Turn(h core.Heading) bool {
	head := s.ctx.MustHead()
	headComp, _ := s.world.Components.Head.GetComponent(head)

	if headComp.Heading.IsOpposite(h) {
		s.statRejected.Add(1)
		return false
	}

	if headComp.Heading != h {
		headComp.Heading = h
		s.world.Components.Head.SetComponent(head, headComp)
		s.statTurns.Add(1)
	}
	return true
}
