package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"power4special/internal/game"
)

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Game struct {
	MaxTime       int           `yaml:"max_time"`       // seconds before a turn passes
	SpecialCells  int           `yaml:"special_cells"`  // bonus-turn cells per board
	MoveDelay     time.Duration `yaml:"move_delay"`     // drop animation before a move resolves
	ComputerDelay time.Duration `yaml:"computer_delay"` // pause before the computer plays
	Seed          string        `yaml:"seed"`           // fixed phrase for replayable layouts, blank for random
}

type Config struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
	Log       Log    `yaml:"log"`
	Game      Game   `yaml:"game"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Addr: ":8090",
		Log:  Log{Level: "info"},
		Game: Game{
			MaxTime:       game.DefaultMaxTime,
			SpecialCells:  5,
			MoveDelay:     500 * time.Millisecond,
			ComputerDelay: 700 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults (an empty path keeps them) and applies the PORT override
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is empty"))
	}
	if c.Game.MaxTime <= 0 {
		errs = append(errs, fmt.Errorf("game.max_time must be positive, got %d", c.Game.MaxTime))
	}
	if c.Game.SpecialCells < 0 || c.Game.SpecialCells > game.Rows*game.Cols {
		errs = append(errs, fmt.Errorf("game.special_cells must be within 0..%d, got %d", game.Rows*game.Cols, c.Game.SpecialCells))
	}
	if c.Game.MoveDelay < 0 || c.Game.ComputerDelay < 0 {
		errs = append(errs, errors.New("game delays must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
