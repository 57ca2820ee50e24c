package config

import (
	"math"
	"time"

	"github.com/vovakirdan/neontype/internal/core"
)

// Difficulty maps elapsed game time to fall speed and spawn interval.
// Elapsed time is game time: it runs slower while Time Warp is active.
type Difficulty struct {
	initialSpeed float64
	maxSpeed     float64
	speedRamp    time.Duration
	initialSpawn time.Duration
	minSpawn     time.Duration
	spawnRamp    time.Duration
}

// NewDifficulty creates a difficulty model from the config.
func NewDifficulty(cfg GameConfig) *Difficulty {
	return &Difficulty{
		initialSpeed: cfg.Speed.Initial,
		maxSpeed:     cfg.Speed.Max,
		speedRamp:    Ms(cfg.Speed.RampMs),
		initialSpawn: Ms(cfg.Spawn.InitialMs),
		minSpawn:     Ms(cfg.Spawn.MinMs),
		spawnRamp:    Ms(cfg.Spawn.RampMs),
	}
}

// Speed returns the fall speed after elapsed game time.
// Linear from initial to max over the ramp, constant afterwards.
func (d *Difficulty) Speed(elapsed time.Duration) float64 {
	progress := rampProgress(elapsed, d.speedRamp)
	if progress >= 1 {
		return d.maxSpeed
	}
	return core.Lerp(d.initialSpeed, d.maxSpeed, progress)
}

// SpawnInterval returns the time between spawns for the given elapsed time and speed.
// The base interval shrinks toward the minimum over the ramp and is further
// divided by (speed*0.5 + 0.5).
func (d *Difficulty) SpawnInterval(elapsed time.Duration, speed float64) time.Duration {
	progress := rampProgress(elapsed, d.spawnRamp)
	base := core.Lerp(float64(d.initialSpawn), float64(d.minSpawn), progress)

	factor := speed*0.5 + 0.5
	if factor <= 0 {
		factor = 1
	}
	interval := base / factor
	if interval < 0 || math.IsNaN(interval) {
		return 0
	}
	return time.Duration(interval)
}

// InitialSpeed returns the speed at game time zero.
func (d *Difficulty) InitialSpeed() float64 {
	return d.initialSpeed
}

// rampProgress returns elapsed/ramp clamped to [0, 1]. A non-positive ramp is complete.
func rampProgress(elapsed, ramp time.Duration) float64 {
	if ramp <= 0 {
		return 1
	}
	return core.ClampF(float64(elapsed)/float64(ramp), 0.0, 1.0)
}
