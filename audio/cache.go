package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/core"
)

// soundCache stores rendered sample buffers per sound type
type soundCache struct {
	mu     sync.RWMutex
	config *AudioConfig
	store  [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{config: cfg}
}

// get returns a fresh seeker over the cached buffer, rendering it on first use
func (c *soundCache) get(st core.SoundType) beep.StreamSeeker {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()

	if buf == nil {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf = c.store[st]; buf == nil {
			buf = c.render(st)
			c.store[st] = buf
		}
		c.mu.Unlock()
	}

	return buf.Streamer(0, buf.Len())
}

// render drains the generated streamer into a buffer
func (c *soundCache) render(st core.SoundType) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(c.config.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	if s := generateSound(st, c.config); s != nil {
		buf.Append(s)
	}
	return buf
}

// preload renders every sound so the first play does no synthesis
func (c *soundCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
