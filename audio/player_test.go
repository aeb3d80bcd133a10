package audio

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// newDetachedPlayer returns a running player whose mixer is not attached to the speaker
func newDetachedPlayer(cfg *AudioConfig) *Player {
	p := NewPlayer(cfg)
	p.lock = func() {}
	p.unlock = func() {}
	p.running.Store(true)
	return p
}

func TestPlayerNotRunning(t *testing.T) {
	p := NewPlayer(nil)
	if p.Play(core.SoundChime) {
		t.Error("Expected Play to fail before Start")
	}
	if p.IsRunning() {
		t.Error("Expected player not running")
	}
}

func TestPlayerQueuesSounds(t *testing.T) {
	p := newDetachedPlayer(nil)

	if !p.Play(core.SoundChime) {
		t.Fatal("Expected chime to play")
	}
	if !p.Play(core.SoundCrash) {
		t.Fatal("Expected crash to play")
	}
	if p.Play(core.SoundTypeCount) {
		t.Error("Expected unknown sound to be rejected")
	}
	if p.Active() != 2 {
		t.Errorf("Expected 2 active sounds, got %d", p.Active())
	}
}

func TestPlayerMute(t *testing.T) {
	p := newDetachedPlayer(nil)

	if !p.ToggleMute() {
		t.Error("Expected muted after first toggle")
	}
	if p.Play(core.SoundChime) {
		t.Error("Expected Play to fail while muted")
	}
	if p.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}
	if !p.Play(core.SoundChime) {
		t.Error("Expected Play after unmute")
	}
}

func TestPlayerDisabledStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	if !p.IsMuted() {
		t.Error("Expected disabled config to start muted")
	}
}

func TestCacheReusesRender(t *testing.T) {
	c := newSoundCache(DefaultAudioConfig())
	c.preload()

	first := c.store[core.SoundChime]
	if first == nil || first.Len() == 0 {
		t.Fatal("Expected rendered chime buffer")
	}

	s := c.get(core.SoundChime)
	if s.Len() != first.Len() {
		t.Errorf("Expected seeker over %d samples, got %d", first.Len(), s.Len())
	}
	if c.store[core.SoundChime] != first {
		t.Error("Expected cached buffer to be reused")
	}
	if c.get(core.SoundType(-1)) != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

func TestSetVolumeInvalidatesCache(t *testing.T) {
	p := newDetachedPlayer(nil)
	p.cache.preload()

	p.SetVolume(2.5)
	if p.config.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", p.config.MasterVolume)
	}
	if p.cache.store[core.SoundCrash] != nil {
		t.Error("Expected cache cleared after volume change")
	}
}
