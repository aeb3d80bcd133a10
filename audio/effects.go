package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.noise.Next()>>11)/float64(1<<53)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, zero gain is mapped to silence since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound generates a rising two-note chime for orb consumption
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6 then B6
	first := NewEnvelope(
		NewOscillator(1318.5, parameter.ChimeNote1Duration, WaveSine, rate),
		parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)
	second := NewEnvelope(
		NewOscillator(1975.5, parameter.ChimeNote2Duration, WaveSine, rate),
		parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	vol := cfg.EffectVolumes[core.SoundChime] * cfg.MasterVolume
	return newVolume(beep.Seq(first, second), vol)
}

// CreateCrashSound generates a low saw thud layered with a noise burst for self-collision
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CrashSoundDuration

	thud := NewEnvelope(NewOscillator(90.0, d, WaveSaw, rate), d, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)
	burst := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(thud, 0.7),
		newVolume(burst, 0.3),
	)

	vol := cfg.EffectVolumes[core.SoundCrash] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// soundLength returns the nominal duration of a sound type
func soundLength(st core.SoundType) time.Duration {
	switch st {
	case core.SoundChime:
		return parameter.ChimeNote1Duration + parameter.ChimeNote2Duration
	case core.SoundCrash:
		return parameter.CrashSoundDuration
	}
	return 0
}

// generateSound builds the streamer for a sound type, nil for unknown types
func generateSound(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundChime:
		return CreateChimeSound(cfg)
	case core.SoundCrash:
		return CreateCrashSound(cfg)
	}
	return nil
}
