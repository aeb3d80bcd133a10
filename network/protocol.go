package network

import (
	"fmt"

	"github.com/joonazan/vec2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// MessageType identifies the semantic meaning of a frame
type MessageType uint8

const (
	MsgStateSync MessageType = 0x11 // Full state snapshot
	MsgEvent     MessageType = 0x12 // Game event broadcast
)

// Point is a wire position
type Point struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
}

func toPoint(v vec2.Vector) Point {
	return Point{X: v.X, Y: v.Y}
}

// GridInfo describes the board so viewers can lay it out
type GridInfo struct {
	CellSize float64 `msgpack:"cell" json:"cell_size"`
	Width    int     `msgpack:"w" json:"width"`
	Height   int     `msgpack:"h" json:"height"`
}

// Frame is one message on the spectator stream
// Websocket clients receive msgpack binary frames, /snapshot serves the same struct as JSON
type Frame struct {
	Type    MessageType `msgpack:"t" json:"type"`
	Session string      `msgpack:"sid" json:"session"`
	Tick    int64       `msgpack:"tick" json:"tick"`

	// State sync
	Grid    *GridInfo `msgpack:"grid,omitempty" json:"grid,omitempty"`
	Head    Point     `msgpack:"head" json:"head"`
	Heading string    `msgpack:"dir" json:"heading"`
	Crashed bool      `msgpack:"crashed" json:"crashed"`
	Body    []Point   `msgpack:"body" json:"body"`
	Orb     Point     `msgpack:"orb" json:"orb"`

	// Event
	Event  string `msgpack:"ev,omitempty" json:"event,omitempty"`
	Length int    `msgpack:"len,omitempty" json:"length,omitempty"`
}

// StateFrame builds a state sync frame from a snapshot
func StateFrame(session string, grid engine.Grid, snap engine.Snapshot) *Frame {
	body := make([]Point, len(snap.Body))
	for i, p := range snap.Body {
		body[i] = toPoint(p)
	}
	return &Frame{
		Type:    MsgStateSync,
		Session: session,
		Tick:    snap.Tick,
		Grid:    &GridInfo{CellSize: grid.CellSize, Width: grid.Width, Height: grid.Height},
		Head:    toPoint(snap.Head),
		Heading: snap.Heading.String(),
		Crashed: snap.Crashed,
		Body:    body,
		Orb:     toPoint(snap.Orb),
	}
}

// EventFrame converts an outcome event, false for events not forwarded to spectators
func EventFrame(session string, ev event.GameEvent) (*Frame, bool) {
	f := &Frame{
		Type:    MsgEvent,
		Session: session,
		Tick:    ev.Frame,
		Event:   ev.Type.String(),
	}

	switch p := ev.Payload.(type) {
	case *event.OrbConsumedPayload:
		f.Head = toPoint(p.At)
		f.Orb = toPoint(p.NewOrb)
		f.Length = p.Length
	case *event.SnakeCrashedPayload:
		f.Head = toPoint(p.At)
		f.Crashed = true
	default:
		return nil, false
	}
	return f, true
}

// Encode serializes the frame as msgpack
func (f *Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a msgpack frame
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &f, nil
}
