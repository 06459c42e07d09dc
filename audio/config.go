package audio

import "github.com/lixenwraith/invaders/constants"

// Config controls cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	AssetDir     string // Optional directory of <cue>.wav overrides
}

// DefaultConfig returns audio enabled at 70% with synthesized cues
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   constants.AudioSampleRate,
	}
}
