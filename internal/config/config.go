// Package config provides YAML-based game configuration loading and
// the difficulty model for the typing arcade.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Speed    SpeedConfig    `yaml:"speed"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Effects  EffectsConfig  `yaml:"effects"`
	Session  SessionConfig  `yaml:"session"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
}

// BoardConfig defines the playfield and the frame clock.
type BoardConfig struct {
	Lanes           int     `yaml:"lanes"`
	InitialLives    int     `yaml:"initial_lives"`
	BaseFallRate    float64 `yaml:"base_fall_rate"`     // Percent of board height per reference frame at speed 1
	MaxFrameDeltaMs int     `yaml:"max_frame_delta_ms"` // Clamp for long frames (tab suspension, slow SSH links)
}

// SpeedConfig defines the fall speed ramp.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
	RampMs  int     `yaml:"ramp_ms"` // Game time at which Max is reached
}

// SpawnConfig defines the word spawn interval ramp.
type SpawnConfig struct {
	InitialMs    int `yaml:"initial_ms"`
	MinMs        int `yaml:"min_ms"`
	RampMs       int `yaml:"ramp_ms"`
	FirstDelayMs int `yaml:"first_delay_ms"` // Delay of the first word after play begins
}

// ScoringConfig defines points and penalties.
type ScoringConfig struct {
	PointsPerLetter int `yaml:"points_per_letter"`
	TypoPenalty     int `yaml:"typo_penalty"`
}

// EffectsConfig defines feedback timings.
type EffectsConfig struct {
	ParticlesPerWord  int     `yaml:"particles_per_word"`
	ParticleFade      float64 `yaml:"particle_fade"` // Opacity lost per tick
	CompletionGraceMs int     `yaml:"completion_grace_ms"`
	PopupMs           int     `yaml:"popup_ms"`
	NotificationMs    int     `yaml:"notification_ms"`
}

// SessionConfig defines the screen transition timings.
type SessionConfig struct {
	EnterTransitionMs int `yaml:"enter_transition_ms"` // Ready -> Starting
	StartTransitionMs int `yaml:"start_transition_ms"` // Starting -> Playing
	ExitTransitionMs  int `yaml:"exit_transition_ms"`  // Leaving the board
}

// PowerUpsConfig holds one entry per power-up kind.
type PowerUpsConfig struct {
	TimeWarp    PowerUpConfig `yaml:"time_warp"`
	ScoreSurge  PowerUpConfig `yaml:"score_surge"`
	SystemShock PowerUpConfig `yaml:"system_shock"`
}

// PowerUpConfig describes a single power-up kind.
type PowerUpConfig struct {
	Name            string  `yaml:"name"`
	ActivationWord  string  `yaml:"activation_word"`
	DropChance      float64 `yaml:"drop_chance"` // Probability per completed word, 0..1
	DurationMs      int     `yaml:"duration_ms"` // 0 means instant
	TimeScale       float64 `yaml:"time_scale,omitempty"`
	ScoreMultiplier int     `yaml:"score_multiplier,omitempty"`
}

// Duration returns the effect duration.
func (p PowerUpConfig) Duration() time.Duration {
	return Ms(p.DurationMs)
}

// All returns the power-up configs in roulette order.
func (p PowerUpsConfig) All() []PowerUpConfig {
	return []PowerUpConfig{p.TimeWarp, p.ScoreSurge, p.SystemShock}
}

// Ms converts a millisecond count from the config to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate checks the invariants the simulation relies on.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Board.Lanes <= 0 {
		errs = append(errs, fmt.Errorf("board.lanes must be positive, got %d", c.Board.Lanes))
	}
	if c.Board.InitialLives <= 0 {
		errs = append(errs, fmt.Errorf("board.initial_lives must be positive, got %d", c.Board.InitialLives))
	}
	if c.Board.BaseFallRate <= 0 {
		errs = append(errs, fmt.Errorf("board.base_fall_rate must be positive, got %v", c.Board.BaseFallRate))
	}
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed: need 0 < initial <= max, got %v..%v", c.Speed.Initial, c.Speed.Max))
	}
	if c.Spawn.MinMs <= 0 || c.Spawn.InitialMs < c.Spawn.MinMs {
		errs = append(errs, fmt.Errorf("spawn: need 0 < min_ms <= initial_ms, got %d..%d", c.Spawn.MinMs, c.Spawn.InitialMs))
	}

	firstLetters := make(map[byte]string)
	total := 0.0
	for _, p := range c.PowerUps.All() {
		word := p.ActivationWord
		if word == "" || word != strings.ToLower(word) {
			errs = append(errs, fmt.Errorf("powerup %q: activation word must be non-empty lowercase, got %q", p.Name, word))
			continue
		}
		if other, ok := firstLetters[word[0]]; ok {
			errs = append(errs, fmt.Errorf("powerup %q: activation word %q shares its first letter with %q", p.Name, word, other))
		}
		firstLetters[word[0]] = word
		if p.DropChance < 0 {
			errs = append(errs, fmt.Errorf("powerup %q: negative drop chance", p.Name))
		}
		total += p.DropChance
	}
	if total > 1 {
		errs = append(errs, fmt.Errorf("powerups: drop chances add up to %v, must be <= 1", total))
	}
	if c.PowerUps.TimeWarp.TimeScale <= 0 || c.PowerUps.TimeWarp.TimeScale > 1 {
		errs = append(errs, fmt.Errorf("powerups.time_warp.time_scale must be in (0, 1], got %v", c.PowerUps.TimeWarp.TimeScale))
	}
	if c.PowerUps.ScoreSurge.ScoreMultiplier < 1 {
		errs = append(errs, fmt.Errorf("powerups.score_surge.score_multiplier must be >= 1, got %d", c.PowerUps.ScoreSurge.ScoreMultiplier))
	}

	return errors.Join(errs...)
}
