// Package config resolves game tuning from defaults, an optional YAML file and
// INVADERS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/entity"
)

// ErrInvalid wraps every validation and parse failure
var ErrInvalid = errors.New("invalid config")

// Config is the full tuning surface
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Swarm        SwarmConfig   `yaml:"swarm"`
	Shot         ShotConfig    `yaml:"shot"`
	Player       PlayerConfig  `yaml:"player"`
	Render       RenderConfig  `yaml:"render"`
	Audio        AudioConfig   `yaml:"audio"`
}

type SwarmConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	Decrement       time.Duration `yaml:"decrement"`
	Floor           time.Duration `yaml:"floor"`
}

type ShotConfig struct {
	Interval  time.Duration `yaml:"interval"`
	Explosion time.Duration `yaml:"explosion"`
}

type PlayerConfig struct {
	MaxShots int `yaml:"max_shots"`
}

type RenderConfig struct {
	QueueSize int `yaml:"queue_size"`
}

type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Assets string  `yaml:"assets"`
	Volume float64 `yaml:"volume"`
}

// Default returns the stock tuning
func Default() Config {
	return Config{
		TickInterval: constants.TickInterval,
		Swarm: SwarmConfig{
			InitialInterval: constants.SwarmInitialInterval,
			Decrement:       constants.SwarmIntervalDecrement,
			Floor:           constants.SwarmIntervalFloor,
		},
		Shot: ShotConfig{
			Interval:  constants.ShotInterval,
			Explosion: constants.ExplosionDuration,
		},
		Player: PlayerConfig{MaxShots: constants.MaxShots},
		Render: RenderConfig{QueueSize: constants.FrameQueueSize},
		Audio:  AudioConfig{Volume: audio.DefaultConfig().MasterVolume},
	}
}

// Load resolves defaults, then the YAML file at path (skipped when empty), then the
// process environment, and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from INVADERS_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"INVADERS_TICK_INTERVAL", &c.TickInterval},
		{"INVADERS_SWARM_INTERVAL", &c.Swarm.InitialInterval},
		{"INVADERS_SWARM_DECREMENT", &c.Swarm.Decrement},
		{"INVADERS_SWARM_FLOOR", &c.Swarm.Floor},
		{"INVADERS_SHOT_INTERVAL", &c.Shot.Interval},
		{"INVADERS_EXPLOSION", &c.Shot.Explosion},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, d.key, err)
		}
		*d.dst = parsed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"INVADERS_MAX_SHOTS", &c.Player.MaxShots},
		{"INVADERS_QUEUE_SIZE", &c.Render.QueueSize},
	}
	for _, i := range ints {
		v, ok := lookup(i.key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, i.key, err)
		}
		*i.dst = parsed
	}

	if v, ok := lookup("INVADERS_AUDIO_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: INVADERS_AUDIO_ENABLED: %v", ErrInvalid, err)
		}
		c.Audio.Muted = !enabled
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if v, ok := lookup("INVADERS_MASTER_VOLUME"); ok {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: INVADERS_MASTER_VOLUME: %v", ErrInvalid, err)
		}
		c.Audio.Volume = float64(vol) / 100.0
	}

	if v, ok := lookup("INVADERS_ASSETS"); ok {
		c.Audio.Assets = v
	}
	return nil
}

// Validate rejects tuning the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.TickInterval < 0:
		return fmt.Errorf("%w: tick_interval %v is negative", ErrInvalid, c.TickInterval)
	case c.Swarm.InitialInterval <= 0:
		return fmt.Errorf("%w: swarm.initial_interval must be positive", ErrInvalid)
	case c.Swarm.Decrement < 0:
		return fmt.Errorf("%w: swarm.decrement %v is negative", ErrInvalid, c.Swarm.Decrement)
	case c.Swarm.Floor <= 0:
		return fmt.Errorf("%w: swarm.floor must be positive", ErrInvalid)
	case c.Swarm.Floor > c.Swarm.InitialInterval:
		return fmt.Errorf("%w: swarm.floor %v exceeds initial interval %v", ErrInvalid, c.Swarm.Floor, c.Swarm.InitialInterval)
	case c.Shot.Interval <= 0 || c.Shot.Explosion <= 0:
		return fmt.Errorf("%w: shot timers must be positive", ErrInvalid)
	case c.Player.MaxShots < 1:
		return fmt.Errorf("%w: player.max_shots %d below 1", ErrInvalid, c.Player.MaxShots)
	case c.Render.QueueSize < 1:
		return fmt.Errorf("%w: render.queue_size %d below 1", ErrInvalid, c.Render.QueueSize)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// SwarmConfig converts to the entity tuning
func (c *Config) SwarmConfig() entity.SwarmConfig {
	return entity.SwarmConfig{
		Interval:  c.Swarm.InitialInterval,
		Decrement: c.Swarm.Decrement,
		Floor:     c.Swarm.Floor,
	}
}

// PlayerConfig converts to the entity tuning
func (c *Config) PlayerConfig() entity.PlayerConfig {
	return entity.PlayerConfig{
		MaxShots: c.Player.MaxShots,
		Shot: entity.ShotConfig{
			Interval:  c.Shot.Interval,
			Explosion: c.Shot.Explosion,
		},
	}
}

// AudioConfig converts to the audio engine settings
func (c *Config) AudioConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = !c.Audio.Muted
	ac.MasterVolume = c.Audio.Volume
	ac.AssetDir = c.Audio.Assets
	return ac
}
