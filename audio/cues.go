package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// note is one step of a jingle
type note struct {
	freq float64
	wave WaveType
}

// jingle plays notes back to back with identical shaping
func jingle(rate beep.SampleRate, notes []note, duration, attack, release time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, duration, attack, release, rate))
	}
	return beep.Seq(parts...)
}

// CreateStartupSound generates a rising arpeggio (C5 E5 G5)
func CreateStartupSound(rate beep.SampleRate) beep.Streamer {
	return jingle(rate, []note{
		{523.25, WaveSquare},
		{659.25, WaveSquare},
		{783.99, WaveSquare},
	}, constants.StartupNoteDuration, constants.StartupNoteAttack, constants.StartupNoteRelease)
}

// CreateMoveSound generates a low thump for a swarm descent
func CreateMoveSound(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, 110)
	if err != nil {
		// Sample rate too low for the tone; fall back to the raw oscillator
		tone = NewOscillator(110, constants.MoveSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate)
	return newVolume(shaped, 0.8)
}

// CreatePewSound generates a falling laser zap
func CreatePewSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(1400, 300, constants.PewSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, constants.PewSoundDuration, constants.PewSoundAttack, constants.PewSoundRelease, rate)
	return newVolume(shaped, 0.4)
}

// CreateExplodeSound generates a noise burst over a low rumble
func CreateExplodeSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ExplodeSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(120, 40, d, WaveSaw, rate), d, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)

	return beep.Mix(
		newVolume(noise, 0.5),
		newVolume(rumble, 0.4),
	)
}

// CreateWinSound generates an ascending fanfare (C5 E5 G5 C6)
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return jingle(rate, []note{
		{523.25, WaveSine},
		{659.25, WaveSine},
		{783.99, WaveSine},
		{1046.50, WaveSine},
	}, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease)
}

// CreateLoseSound generates a descending buzz (G4 E4 C4)
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(jingle(rate, []note{
		{392.00, WaveSaw},
		{329.63, WaveSaw},
		{261.63, WaveSaw},
	}, constants.JingleNoteDuration*2, constants.JingleNoteAttack, constants.JingleNoteRelease*2), 0.6)
}

// GetSoundEffect returns a fresh synthesized streamer for the cue, nil if unknown
func GetSoundEffect(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueStartup:
		return CreateStartupSound(rate)
	case core.CueMove:
		return CreateMoveSound(rate)
	case core.CuePew:
		return CreatePewSound(rate)
	case core.CueExplode:
		return CreateExplodeSound(rate)
	case core.CueWin:
		return CreateWinSound(rate)
	case core.CueLose:
		return CreateLoseSound(rate)
	default:
		return nil
	}
}
