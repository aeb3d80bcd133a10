package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Player mixes sound effects onto the system speaker
type Player struct {
	config *AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer

	// Output hooks, speaker lock in production
	lock   func()
	unlock func()

	running atomic.Bool
	muted   atomic.Bool

	mu sync.Mutex // Serializes Start/Stop
}

// NewPlayer creates a player, nil cfg uses defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		cache:  newSoundCache(cfg),
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and attaches the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}

	p.cache.preload()

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)

	p.running.Store(true)
	return nil
}

// Stop detaches the mixer and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()

	speaker.Clear()
	speaker.Close()
}

// Play queues a sound onto the mixer, false when not running, muted or unknown
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}

	s := p.cache.get(st)
	if s == nil {
		return false
	}

	p.lock()
	p.mixer.Add(s)
	p.unlock()
	return true
}

// ToggleMute flips mute state, returns true if now muted
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsRunning reports whether the speaker is open
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// Active returns the number of sounds currently in the mixer
func (p *Player) Active() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// SetVolume updates master volume and drops cached renders
func (p *Player) SetVolume(vol float64) {
	vol = clampVolume(vol)

	p.cache.mu.Lock()
	p.config.MasterVolume = vol
	for i := range p.cache.store {
		p.cache.store[i] = nil
	}
	p.cache.mu.Unlock()
}
