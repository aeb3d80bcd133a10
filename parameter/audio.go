package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioMasterVolume   = 0.6
)

// Chime Sound (orb consumed), two rising notes
const (
	ChimeNote1Duration = 70 * time.Millisecond
	ChimeNote2Duration = 140 * time.Millisecond
	ChimeAttack        = 4 * time.Millisecond
	ChimeNote1Release  = 30 * time.Millisecond
	ChimeNote2Release  = 110 * time.Millisecond
)

// Crash Sound (self-collision), low saw with a noise burst
const (
	CrashSoundDuration = 220 * time.Millisecond
	CrashSoundAttack   = 3 * time.Millisecond
	CrashSoundRelease  = 160 * time.Millisecond
)
