package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning != DefaultTuning() {
		t.Errorf("expected default tuning, got %+v", cfg.Tuning)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.Mute {
		t.Error("expected mute to be false")
	}
}

func TestParseArgs_Flags(t *testing.T) {
	args := []string{"--points", "21", "--seed", "42", "--mute"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.WinningScore != 21 {
		t.Errorf("expected winning score 21, got %d", cfg.Tuning.WinningScore)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !cfg.Mute {
		t.Error("expected mute to be true")
	}
}

func TestParseArgs_TuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	content := "winning_score = 5\ncpu_paddle_speed = 4.5\nmax_angle_error_deg = 12.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	cfg, err := ParseArgs([]string{"--tuning", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.WinningScore != 5 {
		t.Errorf("expected winning score 5, got %d", cfg.Tuning.WinningScore)
	}
	if cfg.Tuning.CPUPaddleSpeed != 4.5 {
		t.Errorf("expected cpu speed 4.5, got %g", cfg.Tuning.CPUPaddleSpeed)
	}
	if cfg.Tuning.MaxAngleErrorDeg != 12.0 {
		t.Errorf("expected angle error 12, got %g", cfg.Tuning.MaxAngleErrorDeg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Tuning.PlayerPaddleSpeed != DefaultPlayerPaddleSpeed {
		t.Errorf("expected default player speed, got %g", cfg.Tuning.PlayerPaddleSpeed)
	}
}

func TestParseArgs_PointsOverridesTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("winning_score = 5\n"), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	cfg, err := ParseArgs([]string{"--tuning", path, "--points", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.WinningScore != 3 {
		t.Errorf("expected winning score 3, got %d", cfg.Tuning.WinningScore)
	}
}

func TestParseArgs_MissingTuningFile(t *testing.T) {
	_, err := ParseArgs([]string{"--tuning", "/does/not/exist.toml"})
	if err == nil {
		t.Error("expected error for missing tuning file")
	}
}

func TestTuning_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		wantOK bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"zero winning score", func(tn *Tuning) { tn.WinningScore = 0 }, false},
		{"slow player paddle", func(tn *Tuning) { tn.PlayerPaddleSpeed = 1 }, false},
		{"slow cpu paddle", func(tn *Tuning) { tn.CPUPaddleSpeed = 0.5 }, false},
		{"negative angle error", func(tn *Tuning) { tn.MaxAngleErrorDeg = -1 }, false},
		{"huge angle error", func(tn *Tuning) { tn.MaxAngleErrorDeg = 90 }, false},
		{"negative speed error", func(tn *Tuning) { tn.MaxSpeedError = -0.1 }, false},
		{"unit speed error", func(tn *Tuning) { tn.MaxSpeedError = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := DefaultTuning()
			tt.mutate(&tn)
			err := tn.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
