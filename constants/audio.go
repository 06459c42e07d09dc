package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// AudioDrainTimeout caps how long shutdown waits for queued cues
	AudioDrainTimeout = 3 * time.Second
)

// Startup Sound Timing
const (
	StartupNoteDuration = 120 * time.Millisecond
	StartupNoteAttack   = 5 * time.Millisecond
	StartupNoteRelease  = 60 * time.Millisecond
)

// Move Sound Timing
const (
	MoveSoundDuration = 90 * time.Millisecond
	MoveSoundAttack   = 5 * time.Millisecond
	MoveSoundRelease  = 40 * time.Millisecond
)

// Pew Sound Timing
const (
	PewSoundDuration = 120 * time.Millisecond
	PewSoundAttack   = 2 * time.Millisecond
	PewSoundRelease  = 100 * time.Millisecond
)

// Explode Sound Timing
const (
	ExplodeSoundDuration = 300 * time.Millisecond
	ExplodeSoundAttack   = 5 * time.Millisecond
	ExplodeSoundRelease  = 250 * time.Millisecond
)

// Win/Lose Jingle Timing
const (
	JingleNoteDuration = 180 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 120 * time.Millisecond
)
