package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Default gameplay values. Paddle speeds are in pixels per frame; the
// reset cap needs the slower paddle at 2 or faster.
const (
	DefaultWinningScore      = 11
	DefaultPlayerPaddleSpeed = 6.0
	DefaultCPUPaddleSpeed    = 6.0
	DefaultMaxAngleErrorDeg  = 6.0
	DefaultMaxSpeedError     = 0.10
)

// Tuning holds the gameplay numbers, overridable from a TOML file.
type Tuning struct {
	WinningScore      int     `toml:"winning_score"`
	PlayerPaddleSpeed float64 `toml:"player_paddle_speed"`
	CPUPaddleSpeed    float64 `toml:"cpu_paddle_speed"`
	MaxAngleErrorDeg  float64 `toml:"max_angle_error_deg"`
	MaxSpeedError     float64 `toml:"max_speed_error"`
}

// DefaultTuning returns the stock gameplay numbers.
func DefaultTuning() Tuning {
	return Tuning{
		WinningScore:      DefaultWinningScore,
		PlayerPaddleSpeed: DefaultPlayerPaddleSpeed,
		CPUPaddleSpeed:    DefaultCPUPaddleSpeed,
		MaxAngleErrorDeg:  DefaultMaxAngleErrorDeg,
		MaxSpeedError:     DefaultMaxSpeedError,
	}
}

// Config holds the application configuration.
type Config struct {
	Tuning Tuning
	Seed   int64
	Mute   bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Tuning: DefaultTuning()}
}

// ParseArgs parses command line arguments and returns a Config. A tuning
// file is applied over the defaults, then flags over the file.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("crankpong", flag.ContinueOnError)

	tuningPath := fs.String("tuning", "", "path to a TOML tuning file")
	points := fs.Int("points", 0, "points to win (overrides tuning)")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	t := DefaultTuning()
	if *tuningPath != "" {
		if _, err := toml.DecodeFile(*tuningPath, &t); err != nil {
			return nil, fmt.Errorf("tuning file: %w", err)
		}
	}
	if *points > 0 {
		t.WinningScore = *points
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Tuning: t,
		Seed:   *seed,
		Mute:   *mute,
	}

	return cfg, nil
}

// Validate checks the tuning numbers against the game's assumptions.
func (t Tuning) Validate() error {
	if t.WinningScore < 1 {
		return fmt.Errorf("winning score must be at least 1, got %d", t.WinningScore)
	}
	if t.PlayerPaddleSpeed < 2 || t.CPUPaddleSpeed < 2 {
		return fmt.Errorf("paddle speeds must be at least 2, got %g and %g",
			t.PlayerPaddleSpeed, t.CPUPaddleSpeed)
	}
	if t.MaxAngleErrorDeg < 0 || t.MaxAngleErrorDeg >= 90 {
		return fmt.Errorf("max angle error must be in [0, 90), got %g", t.MaxAngleErrorDeg)
	}
	if t.MaxSpeedError < 0 || t.MaxSpeedError >= 1 {
		return fmt.Errorf("max speed error must be in [0, 1), got %g", t.MaxSpeedError)
	}
	return nil
}
