// Package config loads game settings from a TOML file over built-in
// defaults, then applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is read when RPG_CONFIG is unset. It may be absent.
const DefaultPath = "config/game.toml"

// PathEnv names the variable holding an explicit config path.
const PathEnv = "RPG_CONFIG"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Rules   RulesConfig   `toml:"rules"`
	Input   InputConfig   `toml:"input"`
}

type GameConfig struct {
	FramesPerSecond int    `toml:"fps" env:"RPG_FPS"`
	MapWidth        uint16 `toml:"map_width" env:"RPG_MAP_WIDTH"`
	MapHeight       uint16 `toml:"map_height" env:"RPG_MAP_HEIGHT"`
	PatrolInterval  int    `toml:"patrol_interval"` // frames between scripted steps
	ShowFPS         bool   `toml:"show_fps" env:"RPG_SHOW_FPS"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"RPG_LOG_LEVEL"`
	Format string `toml:"format" env:"RPG_LOG_FORMAT"` // "console" or "json"
	File   string `toml:"file" env:"RPG_LOG_FILE"`
}

type RulesConfig struct {
	ScriptsDir string `toml:"scripts_dir" env:"RPG_RULES_DIR"`
}

type InputConfig struct {
	Bindings string `toml:"bindings" env:"RPG_BINDINGS"` // optional YAML file
}

// Load reads path over the defaults and applies environment overrides. An
// empty path, or DefaultPath when the file does not exist, yields defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case path == DefaultPath && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads from the path in RPG_CONFIG, or DefaultPath.
func FromEnv() (*Config, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	switch {
	case c.Game.FramesPerSecond <= 0 || c.Game.FramesPerSecond > 240:
		return fmt.Errorf("%w: fps %d out of range 1..240", ErrInvalid, c.Game.FramesPerSecond)
	case c.Game.MapWidth == 0 || c.Game.MapHeight == 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalid, c.Game.MapWidth, c.Game.MapHeight)
	case c.Game.PatrolInterval < 0:
		return fmt.Errorf("%w: patrol interval %d", ErrInvalid, c.Game.PatrolInterval)
	case c.Logging.Format != "console" && c.Logging.Format != "json":
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			FramesPerSecond: 30,
			MapWidth:        60,
			MapHeight:       20,
			PatrolInterval:  15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "terminal-rpg.log",
		},
		Rules: RulesConfig{
			ScriptsDir: "scripts/rules",
		},
	}
}
