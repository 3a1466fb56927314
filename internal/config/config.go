package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/diegok/pixbreak/internal/game"
)

// Default values for configuration
const (
	DefaultFPS = 100
	MinFPS     = 30
	MaxFPS     = 240
)

// Config holds the application configuration
type Config struct {
	FPS        int
	Debug      bool
	ConfigFile string

	settings game.Settings
}

// fileConfig mirrors the optional TOML settings file. Unset keys keep their
// defaults, so every field is a pointer or a nil-able slice.
type fileConfig struct {
	FPS          *int     `toml:"fps"`
	Lives        *int     `toml:"lives"`
	Gravity      *float64 `toml:"gravity"`
	AngledPaddle *bool    `toml:"angled_paddle"`
	Bricks       *bool    `toml:"bricks"`
	PaddleSpeed  *float64 `toml:"paddle_speed"`
	PaddleWidth  *float64 `toml:"paddle_width"`
	BrickRows    *int     `toml:"brick_rows"`
	BrickCols    *int     `toml:"brick_cols"`
	BrickValues  []int    `toml:"brick_values"`
}

// ParseArgs parses command line arguments and returns a Config.
// Flags override values from --config, which override the defaults.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixbreak", flag.ContinueOnError)

	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("ticks per second (%d-%d)", MinFPS, MaxFPS))
	lives := fs.Int("lives", game.DefaultLives, "balls per round (>=1)")
	gravity := fs.Float64("gravity", 0, "downward acceleration per tick (>=0)")
	classic := fs.Bool("classic", false, "plain vertical bounce off the paddle")
	noBricks := fs.Bool("no-bricks", false, "play without the brick wall")
	paddleSpeed := fs.Float64("paddle-speed", game.DefaultPaddleSpeed, "paddle pixels per tick (>0)")
	configFile := fs.String("config", "", "TOML settings file")
	debug := fs.Bool("debug", false, "write a debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		FPS:        DefaultFPS,
		Debug:      *debug,
		ConfigFile: *configFile,
		settings:   game.DefaultSettings(),
	}

	if cfg.ConfigFile != "" {
		if err := cfg.loadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	// Only flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fps
		case "lives":
			cfg.settings.Lives = *lives
		case "gravity":
			cfg.settings.Gravity = *gravity
		case "classic":
			cfg.settings.AngledPaddle = !*classic
		case "no-bricks":
			cfg.settings.Bricks = !*noBricks
		case "paddle-speed":
			cfg.settings.PaddleSpeed = *paddleSpeed
		}
	})

	// Validate fps range
	if cfg.FPS < MinFPS || cfg.FPS > MaxFPS {
		return nil, fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, cfg.FPS)
	}

	// Lives, gravity, paddle and brick values are checked by the engine
	if err := cfg.settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	return cfg, nil
}

// Settings returns the game settings described by this config. The copy is
// the caller's to keep.
func (c *Config) Settings() game.Settings {
	return c.settings.Clone()
}

func (c *Config) loadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("config %s: unknown key %q", path, keys[0].String())
	}
	c.apply(fc)
	return nil
}

func (c *Config) apply(fc fileConfig) {
	s := &c.settings
	if fc.FPS != nil {
		c.FPS = *fc.FPS
	}
	if fc.Lives != nil {
		s.Lives = *fc.Lives
	}
	if fc.Gravity != nil {
		s.Gravity = *fc.Gravity
	}
	if fc.AngledPaddle != nil {
		s.AngledPaddle = *fc.AngledPaddle
	}
	if fc.Bricks != nil {
		s.Bricks = *fc.Bricks
	}
	if fc.PaddleSpeed != nil {
		s.PaddleSpeed = *fc.PaddleSpeed
	}
	if fc.PaddleWidth != nil {
		s.PaddleWidth = *fc.PaddleWidth
	}
	if fc.BrickRows != nil {
		s.BrickRows = *fc.BrickRows
	}
	if fc.BrickCols != nil {
		s.BrickCols = *fc.BrickCols
	}
	if fc.BrickValues != nil {
		s.BrickValues = append([]int(nil), fc.BrickValues...)
	}
}
