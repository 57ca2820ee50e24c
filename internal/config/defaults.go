package config

import (
	_ "embed"
)

//go:embed defaults/neontype.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// It mirrors defaults/neontype.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Lanes:           4,
			InitialLives:    5,
			BaseFallRate:    0.05,
			MaxFrameDeltaMs: 100,
		},
		Speed: SpeedConfig{
			Initial: 1.6,
			Max:     8,
			RampMs:  180000, // 3 minutes
		},
		Spawn: SpawnConfig{
			InitialMs:    3500,
			MinMs:        2000,
			RampMs:       90000,
			FirstDelayMs: 1300,
		},
		Scoring: ScoringConfig{
			PointsPerLetter: 10,
			TypoPenalty:     5,
		},
		Effects: EffectsConfig{
			ParticlesPerWord:  12,
			ParticleFade:      0.02,
			CompletionGraceMs: 300,
			PopupMs:           1500,
			NotificationMs:    2000,
		},
		Session: SessionConfig{
			EnterTransitionMs: 300,
			StartTransitionMs: 400,
			ExitTransitionMs:  700,
		},
		PowerUps: PowerUpsConfig{
			TimeWarp: PowerUpConfig{
				Name:           "Time Warp",
				ActivationWord: "slow",
				DropChance:     0.03,
				DurationMs:     8000,
				TimeScale:      0.5,
			},
			ScoreSurge: PowerUpConfig{
				Name:            "Score Surge",
				ActivationWord:  "points",
				DropChance:      0.03,
				DurationMs:      10000,
				ScoreMultiplier: 2,
			},
			SystemShock: PowerUpConfig{
				Name:           "System Shock",
				ActivationWord: "blast",
				DropChance:     0.01,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
