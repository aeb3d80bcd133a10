package system

import (
	"sync"
	"testing"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// mockPlayer records played sounds
type mockPlayer struct {
	mu     sync.Mutex
	played []core.SoundType
	muted  bool
}

func (m *mockPlayer) Play(st core.SoundType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		return false
	}
	m.played = append(m.played, st)
	return true
}

func (m *mockPlayer) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

func (m *mockPlayer) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *mockPlayer) sounds() []core.SoundType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.SoundType, len(m.played))
	copy(out, m.played)
	return out
}

// eventRecorder captures outcome events routed by the scheduler
type eventRecorder struct {
	events []event.GameEvent
}

func (r *eventRecorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventOrbConsumed, event.EventSnakeCrashed}
}

func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// testGame wires the full system set against a mock clock and scripted RNG
type testGame struct {
	ctx      *engine.GameContext
	sched    *engine.ClockScheduler
	dir      *DirectionSystem
	rng      *engine.ScriptedRand
	player   *mockPlayer
	recorder *eventRecorder
}

func newTestGame(t *testing.T, cfg engine.ConfigResource) *testGame {
	t.Helper()

	rng := &engine.ScriptedRand{}
	ctx, clock := engine.NewTestGameContext(cfg, rng)

	player := &mockPlayer{}
	ctx.World.Resources.Audio = &engine.AudioResource{Player: player}

	ctx.Setup()

	dir := NewDirectionSystem(ctx).(*DirectionSystem)
	ctx.World.AddSystem(NewCollisionSystem(ctx))
	ctx.World.AddSystem(NewMovementSystem(ctx))
	ctx.World.AddSystem(dir)
	ctx.World.AddSystem(NewAudioSystem(ctx.World))

	sched, _ := engine.NewClockScheduler(ctx, clock, cfg.TickInterval)
	sched.RegisterSystems()

	recorder := &eventRecorder{}
	sched.RegisterEventHandler(recorder)

	return &testGame{
		ctx:      ctx,
		sched:    sched,
		dir:      dir,
		rng:      rng,
		player:   player,
		recorder: recorder,
	}
}

// place rebuilds the snake: head position and heading, then the body in order
func (g *testGame) place(head vec2.Vector, heading core.Heading, body ...vec2.Vector) {
	w := g.ctx.World
	w.DestroyBatch(g.ctx.BodySegments())

	w.Components.Position.SetComponent(g.ctx.HeadEntity, component.PositionComponent{Vector: head})
	w.Components.Head.SetComponent(g.ctx.HeadEntity, component.HeadComponent{Heading: heading, Vacated: head})
	w.Components.Sprite.SetComponent(g.ctx.HeadEntity, component.SpriteComponent{Appearance: component.AppearanceNormal})

	for _, p := range body {
		g.ctx.SpawnSegment(p)
	}
}

func (g *testGame) placeOrb(p vec2.Vector) {
	g.ctx.World.Components.Position.SetComponent(g.ctx.OrbEntity, component.PositionComponent{Vector: p})
}

func (g *testGame) snapshot() engine.Snapshot {
	return g.ctx.Snapshot()
}

func (g *testGame) heading() core.Heading {
	return g.snapshot().Heading
}

func v(x, y float64) vec2.Vector {
	return vec2.Vector{X: x, Y: y}
}

func assertBody(t *testing.T, got []vec2.Vector, want ...vec2.Vector) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected body %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected segment %d at %v, got %v", i, want[i], got[i])
		}
	}
}
