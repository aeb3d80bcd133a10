package event

// EventType represents the type of game event
type EventType int

const (
	// EventDirectionRequest asks the head to turn
	// Trigger: Host input intake | Consumer: DirectionSystem | Payload: *DirectionRequestPayload
	EventDirectionRequest EventType = iota

	// EventOrbConsumed reports growth
	// Trigger: CollisionSystem | Consumer: network.Service | Payload: *OrbConsumedPayload
	EventOrbConsumed

	// EventSnakeCrashed reports self-collision
	// Trigger: CollisionSystem | Consumer: network.Service | Payload: *SnakeCrashedPayload
	EventSnakeCrashed

	// EventSoundRequest requests audio playback
	// Trigger: Any | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

var eventNames = map[EventType]string{
	EventDirectionRequest: "DirectionRequest",
	EventOrbConsumed:      "OrbConsumed",
	EventSnakeCrashed:     "SnakeCrashed",
	EventSoundRequest:     "SoundRequest",
}

// String returns the event name for logging
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued event stamped with the tick it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
