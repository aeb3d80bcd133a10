package network

import (
	"testing"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
)

func TestStateFrameCopiesSnapshot(t *testing.T) {
	snap := testSnapshot(42)
	snap.Crashed = true
	snap.Heading = core.HeadingLeft

	f := StateFrame("s1", testGrid(), snap)
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}

	if got.Tick != 42 || !got.Crashed || got.Heading != "left" {
		t.Errorf("Expected tick 42 crashed Left, got tick %d crashed %v %s", got.Tick, got.Crashed, got.Heading)
	}
	want := []Point{{X: 0, Y: 0}, {X: 0, Y: -32}}
	if len(got.Body) != len(want) {
		t.Fatalf("Expected %d body points, got %d", len(want), len(got.Body))
	}
	for i := range want {
		if got.Body[i] != want[i] {
			t.Errorf("Body[%d]: expected %+v, got %+v", i, want[i], got.Body[i])
		}
	}
	if got.Grid == nil || got.Grid.CellSize != 32 {
		t.Errorf("Expected cell size 32, got %+v", got.Grid)
	}
}

func TestEventFrameFiltersTypes(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		ok   bool
	}{
		{"direction request", event.GameEvent{Type: event.EventDirectionRequest, Payload: &event.DirectionRequestPayload{Heading: core.HeadingLeft}}, false},
		{"sound request", event.GameEvent{Type: event.EventSoundRequest, Payload: &event.SoundRequestPayload{SoundType: core.SoundChime}}, false},
		{"orb consumed", event.GameEvent{Type: event.EventOrbConsumed, Payload: &event.OrbConsumedPayload{At: vec2.Vector{X: 32, Y: 32}}}, true},
		{"crashed", event.GameEvent{Type: event.EventSnakeCrashed, Payload: &event.SnakeCrashedPayload{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := EventFrame("s", tt.ev)
			if ok != tt.ok {
				t.Errorf("Expected %v, got %v", tt.ok, ok)
			}
		})
	}
}

func TestHubBroadcastDropsWhenFull(t *testing.T) {
	h := NewHub(nil)
	c := &Client{ID: "slow", sendCh: make(chan []byte, 1), closeCh: make(chan struct{})}
	if !h.Add(c, 0) {
		t.Fatal("Add failed")
	}

	if n := h.Broadcast([]byte{1}); n != 1 {
		t.Errorf("Expected 1 accepted, got %d", n)
	}
	if n := h.Broadcast([]byte{2}); n != 0 {
		t.Errorf("Expected 0 accepted on full queue, got %d", n)
	}
	if c.Dropped.Load() != 1 {
		t.Errorf("Expected 1 dropped, got %d", c.Dropped.Load())
	}
}

func TestHubRespectsMax(t *testing.T) {
	h := NewHub(nil)
	a := &Client{ID: "a", sendCh: make(chan []byte, 1), closeCh: make(chan struct{})}
	b := &Client{ID: "b", sendCh: make(chan []byte, 1), closeCh: make(chan struct{})}

	if !h.Add(a, 1) {
		t.Fatal("First Add should succeed")
	}
	if h.Add(b, 1) {
		t.Error("Second Add should fail at max 1")
	}
	if ids := h.IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("Expected [a], got %v", ids)
	}
}
