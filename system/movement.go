package system

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// MovementSystem advances the head one step per tick and drags the body behind it
// Body propagation is a rolling swap: each segment takes the previous occupant's position
type MovementSystem struct {
	ctx   *engine.GameContext
	world *engine.World
	grid  engine.Grid
	speed int
}

func NewMovementSystem(ctx *engine.GameContext) engine.System {
	return &MovementSystem{
		ctx:   ctx,
		world: ctx.World,
		grid:  ctx.Config.Grid,
		speed: ctx.Config.Speed,
	}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	head := s.ctx.MustHead()

	headComp, _ := s.world.Components.Head.GetComponent(head)
	pos, _ := s.world.Components.Position.GetComponent(head)

	last := pos.Vector
	pos.Vector = s.grid.Step(pos.Vector, headComp.Heading, s.speed)
	s.world.Components.Position.SetComponent(head, pos)

	for _, seg := range s.world.Components.Body.GetAllEntities() {
		segPos, ok := s.world.Components.Position.GetComponent(seg)
		if !ok {
			continue
		}
		segPos.Vector, last = last, segPos.Vector
		s.world.Components.Position.SetComponent(seg, segPos)
	}

	// Tail's pre-move position, or the head's when bodiless
	headComp.Vacated = last
	s.world.Components.Head.SetComponent(head, headComp)
}
