package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, duration, wave, rate)

		total, peak := drain(osc)
		if total != rate.N(duration) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(duration), total)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: sample out of range, peak %f", wave, peak)
		}
		if peak == 0 {
			t.Errorf("Wave %d: expected non-silent output", wave)
		}
		if osc.Err() != nil {
			t.Errorf("Wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	env := NewEnvelope(NewOscillator(0, duration, WaveSquare, rate), duration, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	// Square at 0 Hz is a constant 1.0, so samples show the envelope directly
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[5][0] <= 0 || samples[5][0] >= 1 {
		t.Errorf("Expected attack ramp at sample 5, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain at sample 50, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[85][0] {
		t.Errorf("Expected release decay, got %f then %f", samples[85][0], samples[99][0])
	}
}

func TestCreateSoundsDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st   core.SoundType
		want int
	}{
		{core.SoundChime, rate.N(parameter.ChimeNote1Duration) + rate.N(parameter.ChimeNote2Duration)},
		{core.SoundCrash, rate.N(parameter.CrashSoundDuration)},
	}

	for _, tt := range tests {
		total, peak := drain(generateSound(tt.st, cfg))
		if total != tt.want {
			t.Errorf("Sound %d: expected %d samples, got %d", tt.st, tt.want, total)
		}
		if peak == 0 {
			t.Errorf("Sound %d: expected audible output", tt.st)
		}
	}

	if generateSound(core.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(CreateChimeSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestSoundLength(t *testing.T) {
	if soundLength(core.SoundCrash) != parameter.CrashSoundDuration {
		t.Errorf("Expected crash length %v, got %v", parameter.CrashSoundDuration, soundLength(core.SoundCrash))
	}
	if soundLength(core.SoundTypeCount) != 0 {
		t.Error("Expected zero length for unknown sound")
	}
}
