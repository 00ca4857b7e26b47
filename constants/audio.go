package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the mixer sample rate; decoded assets are resampled to it
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality is the beep resampler quality for assets in other rates
	ResampleQuality = 4
)

// Flap Sound Timing
const (
	FlapSoundDuration = 90 * time.Millisecond
	FlapSoundAttack   = 5 * time.Millisecond
	FlapSoundRelease  = 60 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// Groove Loop Timing
const (
	// GrooveBeat is one beat of the background loop (100 BPM)
	GrooveBeat = 600 * time.Millisecond

	// GrooveBars is the number of beats rendered into the loop buffer
	GrooveBars = 8

	// GrooveKick is the kick drum length at the start of each beat
	GrooveKick = 100 * time.Millisecond
)
