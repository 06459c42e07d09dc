package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// ErrNotInitialized is returned when the speaker is not available
var ErrNotInitialized = errors.New("audio not initialized")

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player is the minimal audio interface used by the game.
// Play is fire-and-forget; Wait blocks until every queued cue has finished.
type Player interface {
	Play(cue core.Cue)
	Wait()
}

// Nop is a Player that discards every cue
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) Wait()         {}

// SoundManager plays pre-rendered cue buffers through the beep speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	format      beep.Format
	sounds      map[core.Cue]*beep.Buffer
	pending     sync.WaitGroup
	initialized bool
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	return &SoundManager{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		sounds: make(map[core.Cue]*beep.Buffer),
	}
}

// Initialize renders every cue and opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return fmt.Errorf("%w: disabled by config", ErrNotInitialized)
	}

	sm.loadSounds()

	rate := sm.format.SampleRate
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.initialized = true
	return nil
}

// loadSounds fills the cue table, preferring <AssetDir>/<cue>.wav over synthesis
func (sm *SoundManager) loadSounds() {
	for _, cue := range core.Cues {
		if sm.cfg.AssetDir != "" {
			buf, err := sm.loadWav(filepath.Join(sm.cfg.AssetDir, string(cue)+".wav"))
			if err == nil {
				sm.sounds[cue] = buf
				continue
			}
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("audio: %s: %v (using synthesized cue)", cue, err)
			}
		}

		buf := beep.NewBuffer(sm.format)
		buf.Append(GetSoundEffect(cue, sm.format.SampleRate))
		sm.sounds[cue] = buf
	}
}

// loadWav decodes a wav file into a buffer at the speaker sample rate
func (sm *SoundManager) loadWav(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sm.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, sm.format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(sm.format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// Play queues a cue; unknown cues and an uninitialized speaker are ignored
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.sounds[cue]
	if !ok {
		return
	}

	sm.pending.Add(1)
	speaker.Play(beep.Seq(
		newVolume(buf.Streamer(0, buf.Len()), sm.cfg.MasterVolume),
		beep.Callback(sm.pending.Done),
	))
}

// Wait blocks until queued cues finish, bounded by AudioDrainTimeout
func (sm *SoundManager) Wait() {
	done := make(chan struct{})
	go func() {
		sm.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(constants.AudioDrainTimeout):
		log.Printf("audio: drain timed out after %v", constants.AudioDrainTimeout)
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Open returns a ready Player, degrading to Nop when audio is unavailable
func Open(cfg Config) (Player, func()) {
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio: %v (continuing without audio)", err)
		return Nop{}, func() {}
	}
	return sm, sm.Cleanup
}
