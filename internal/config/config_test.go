package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML and DefaultGameConfig() differ:\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
board:
  lanes: 6
powerups:
  time_warp:
    duration_ms: 4000
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Board.Lanes != 6 {
		t.Errorf("Lanes = %d, expected 6", cfg.Board.Lanes)
	}
	if cfg.Board.InitialLives != 5 {
		t.Errorf("InitialLives = %d, expected default 5", cfg.Board.InitialLives)
	}
	if cfg.PowerUps.TimeWarp.Duration() != 4*time.Second {
		t.Errorf("TimeWarp duration = %v, expected 4s", cfg.PowerUps.TimeWarp.Duration())
	}
	if cfg.PowerUps.TimeWarp.ActivationWord != "slow" {
		t.Errorf("TimeWarp activation word = %q, expected default", cfg.PowerUps.TimeWarp.ActivationWord)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"defaults", func(*GameConfig) {}, ""},
		{"no lanes", func(c *GameConfig) { c.Board.Lanes = 0 }, "board.lanes"},
		{"no lives", func(c *GameConfig) { c.Board.InitialLives = 0 }, "initial_lives"},
		{"max below initial", func(c *GameConfig) { c.Speed.Max = 1 }, "speed"},
		{"spawn min above initial", func(c *GameConfig) { c.Spawn.MinMs = 5000 }, "spawn"},
		{"shared first letter", func(c *GameConfig) { c.PowerUps.ScoreSurge.ActivationWord = "score" }, "first letter"},
		{"uppercase word", func(c *GameConfig) { c.PowerUps.SystemShock.ActivationWord = "Blast" }, "lowercase"},
		{"chances above one", func(c *GameConfig) { c.PowerUps.TimeWarp.DropChance = 0.99 }, "add up"},
		{"time scale zero", func(c *GameConfig) { c.PowerUps.TimeWarp.TimeScale = 0 }, "time_scale"},
		{"multiplier zero", func(c *GameConfig) { c.PowerUps.ScoreSurge.ScoreMultiplier = 0 }, "score_multiplier"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  initial_lives: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.InitialLives != 9 {
		t.Errorf("InitialLives = %d, expected 9", cfg.Board.InitialLives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  lanes: -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid config should fail")
	}
}

func TestLoadFallsBackToValidConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Load(\"\") returned invalid config: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Board.InitialLives != 7 || easy.Speed.Initial >= 1.6 {
		t.Errorf("easy preset: lives=%d initial=%v", easy.Board.InitialLives, easy.Speed.Initial)
	}

	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Board.InitialLives != 3 || hard.Speed.Max <= 8 {
		t.Errorf("hard preset: lives=%d max=%v", hard.Board.InitialLives, hard.Speed.Max)
	}

	fixed := DefaultGameConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Max != fixed.Speed.Initial {
		t.Errorf("fixed preset should disable the speed ramp, got %v..%v", fixed.Speed.Initial, fixed.Speed.Max)
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset produced invalid config: %v", err)
	}

	normal := DefaultGameConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultGameConfig()) {
		t.Error("normal preset should not change the config")
	}
}
