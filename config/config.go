// Package config loads the optional TOML game configuration
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/network"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Config is the root of the TOML file, every section optional
type Config struct {
	Grid     GridConfig          `toml:"grid"`
	Snake    SnakeConfig         `toml:"snake"`
	Clock    ClockConfig         `toml:"clock"`
	Keys     map[string][]string `toml:"keys"`
	Audio    AudioConfig         `toml:"audio"`
	Spectate SpectateConfig      `toml:"spectate"`
}

// GridConfig sizes the board
type GridConfig struct {
	CellSize float64 `toml:"cell_size"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
}

// SnakeConfig controls movement and the startup body
type SnakeConfig struct {
	Speed           int `toml:"speed"`
	InitialSegments int `toml:"initial_segments"`
}

// ClockConfig holds simulation and render periods, e.g. "250ms"
type ClockConfig struct {
	Tick  time.Duration `toml:"tick"`
	Frame time.Duration `toml:"frame"`
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// SpectateConfig holds the read-only stream settings
type SpectateConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	MaxClients int    `toml:"max_clients"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellSize: parameter.CellSize,
			Width:    parameter.GridWidth,
			Height:   parameter.GridHeight,
		},
		Snake: SnakeConfig{
			Speed:           parameter.SnakeSpeed,
			InitialSegments: parameter.InitialSegments,
		},
		Clock: ClockConfig{
			Tick:  parameter.GameUpdateInterval,
			Frame: parameter.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Spectate: SpectateConfig{
			Enabled:    false,
			Addr:       parameter.SpectateDefaultAddr,
			MaxClients: 16,
		},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %v", c.Grid.CellSize))
	}
	if c.Grid.Width < 2 {
		errs = append(errs, fmt.Errorf("grid.width must be at least 2, got %d", c.Grid.Width))
	}
	if c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid.height must be at least 2, got %d", c.Grid.Height))
	}
	if c.Snake.Speed < 1 {
		errs = append(errs, fmt.Errorf("snake.speed must be at least 1, got %d", c.Snake.Speed))
	}
	if c.Snake.InitialSegments < 0 {
		errs = append(errs, fmt.Errorf("snake.initial_segments must not be negative, got %d", c.Snake.InitialSegments))
	}
	if c.Clock.Tick <= 0 {
		errs = append(errs, fmt.Errorf("clock.tick must be positive, got %v", c.Clock.Tick))
	}
	if c.Clock.Frame <= 0 {
		errs = append(errs, fmt.Errorf("clock.frame must be positive, got %v", c.Clock.Frame))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be within 0-1, got %v", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Spectate.Enabled && c.Spectate.Addr == "" {
		errs = append(errs, errors.New("spectate.addr is required when spectating is enabled"))
	}
	if c.Spectate.MaxClients < 0 {
		errs = append(errs, fmt.Errorf("spectate.max_clients must not be negative, got %d", c.Spectate.MaxClients))
	}
	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// GridSpec builds the engine grid
func (c *Config) GridSpec() engine.Grid {
	return engine.Grid{
		CellSize: c.Grid.CellSize,
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
	}
}

// Engine builds the immutable engine configuration resource
func (c *Config) Engine() engine.ConfigResource {
	return engine.ConfigResource{
		Grid:            c.GridSpec(),
		Speed:           c.Snake.Speed,
		InitialSegments: c.Snake.InitialSegments,
		TickInterval:    c.Clock.Tick,
	}
}

// KeyTable returns the default bindings with [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return kt, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	kt.Merge(override)
	return kt, nil
}

// AudioSettings converts the [audio] section for the audio player
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// NetworkSettings converts the [spectate] section for the spectator service
func (c *Config) NetworkSettings() *network.Config {
	nc := network.DefaultConfig()
	nc.Enabled = c.Spectate.Enabled
	nc.Address = c.Spectate.Addr
	nc.MaxClients = c.Spectate.MaxClients
	return nc
}
