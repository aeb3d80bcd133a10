package system

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system bound to the world's audio resource
// Playback is skipped when no player was bridged
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resources.Audio != nil {
		player = world.Resources.Audio.Player
	}

	return &AudioSystem{
		world:  world,
		player: player,
	}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(payload.SoundType)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
