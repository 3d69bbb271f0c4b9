package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Playfield  PlayfieldConfig  `toml:"playfield"`
	Spawn      SpawnConfig      `toml:"spawn"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Player     PlayerConfig     `toml:"player"`
	Weapons    WeaponsConfig    `toml:"weapons"`
	Physics    PhysicsConfig    `toml:"physics"`
	Content    ContentConfig    `toml:"content"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Seed     int64    `toml:"seed"` // 0 = seeded from the clock
	TickRate Duration `toml:"tick_rate"`
}

// PlayfieldConfig is the visible area in scene units, origin at the centre.
type PlayfieldConfig struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`
}

func (p PlayfieldConfig) Width() float64  { return p.MaxX - p.MinX }
func (p PlayfieldConfig) Height() float64 { return p.MaxY - p.MinY }

type SpawnConfig struct {
	Lanes           []float64 `toml:"lanes"`            // y coordinate of each lane
	StartX          float64   `toml:"start_x"`          // spawn boundary
	BaseOffset      float64   `toml:"base_offset"`      // x stagger unit
	FormationStride int       `toml:"formation_stride"` // stagger multiplier per formation slot
}

type EnemyConfig struct {
	FireCooldown    Duration `toml:"fire_cooldown"`
	FireOdds        int      `toml:"fire_odds"` // fires when a draw of [0, odds) is 0
	WeaveAmplitude  float64  `toml:"weave_amplitude"`
	WeaveWavelength float64  `toml:"weave_wavelength"`
	Width           float64  `toml:"width"`
	Height          float64  `toml:"height"`
}

type PlayerConfig struct {
	Shields int     `toml:"shields"`
	X       float64 `toml:"x"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
}

type WeaponsConfig struct {
	PlayerSpeed float64 `toml:"player_speed"` // units per second, rightwards
	EnemySpeed  float64 `toml:"enemy_speed"`  // units per second, leftwards
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
}

type PhysicsConfig struct {
	BuiltinContacts bool `toml:"builtin_contacts"`
}

// ContentConfig points at the enemy-types and waves resources. Empty paths
// select the embedded defaults.
type ContentConfig struct {
	EnemyTypes string `toml:"enemy_types"`
	Waves      string `toml:"waves"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// Duration lets TOML carry values such as "16ms" or "1s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Playfield.MaxX <= c.Playfield.MinX || c.Playfield.MaxY <= c.Playfield.MinY {
		errs = append(errs, errors.New("playfield bounds are inverted or empty"))
	}
	if len(c.Spawn.Lanes) == 0 {
		errs = append(errs, errors.New("spawn.lanes must not be empty"))
	}
	if c.Spawn.FormationStride < 0 {
		errs = append(errs, errors.New("spawn.formation_stride must not be negative"))
	}
	if c.Enemy.FireOdds <= 0 {
		errs = append(errs, errors.New("enemy.fire_odds must be positive"))
	}
	if c.Player.Shields <= 0 {
		errs = append(errs, errors.New("player.shields must be positive"))
	}
	if c.Simulation.TickRate.Duration <= 0 {
		errs = append(errs, errors.New("simulation.tick_rate must be positive"))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	lanes := make([]float64, 0, 9)
	for y := -320.0; y <= 320; y += 80 {
		lanes = append(lanes, y)
	}
	return &Config{
		Simulation: SimulationConfig{
			TickRate: Duration{16 * time.Millisecond},
		},
		Playfield: PlayfieldConfig{
			MinX: -960,
			MaxX: 960,
			MinY: -540,
			MaxY: 540,
		},
		Spawn: SpawnConfig{
			Lanes:           lanes,
			StartX:          600,
			BaseOffset:      100,
			FormationStride: 3,
		},
		Enemy: EnemyConfig{
			FireCooldown:    Duration{time.Second},
			FireOdds:        7,
			WeaveAmplitude:  120,
			WeaveWavelength: 700,
			Width:           80,
			Height:          60,
		},
		Player: PlayerConfig{
			Shields: 10,
			X:       -960 + 90 + 10, // left edge + sprite width + margin
			Width:   90,
			Height:  60,
		},
		Weapons: WeaponsConfig{
			PlayerSpeed: 190, // ~1900 units in 10s
			EnemySpeed:  400,
			Width:       30,
			Height:      10,
		},
		Physics: PhysicsConfig{
			BuiltinContacts: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
