package game

import (
	"time"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
)

// PowerUpSpec is the static description of a power-up kind.
type PowerUpSpec struct {
	Kind            PowerUpKind
	Name            string
	Word            string
	DropChance      float64
	Duration        time.Duration // 0 = instant
	TimeScale       float64
	ScoreMultiplier int
}

// Timed reports whether the power-up runs as a countdown effect.
func (s PowerUpSpec) Timed() bool {
	return s.Duration > 0
}

// ActiveEffect is a running timed power-up.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining time.Duration
	Duration  time.Duration
}

// Fraction returns the remaining share of the effect in [0, 1].
func (e ActiveEffect) Fraction() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return core.ClampF(float64(e.Remaining)/float64(e.Duration), 0, 1)
}

// PowerUps tracks the inventory and the running effects.
type PowerUps struct {
	specs     [PowerUpKindCount]PowerUpSpec
	inventory Inventory
	active    []ActiveEffect
}

// NewPowerUps builds the power-up system from config.
func NewPowerUps(cfg config.PowerUpsConfig) *PowerUps {
	p := &PowerUps{}
	for i, pc := range cfg.All() {
		kind := PowerUpOrder[i]
		p.specs[kind] = PowerUpSpec{
			Kind:            kind,
			Name:            pc.Name,
			Word:            pc.ActivationWord,
			DropChance:      pc.DropChance,
			Duration:        pc.Duration(),
			TimeScale:       pc.TimeScale,
			ScoreMultiplier: pc.ScoreMultiplier,
		}
	}
	return p
}

// Reset empties the inventory and stops every effect.
func (p *PowerUps) Reset() {
	p.inventory = Inventory{}
	p.active = p.active[:0]
}

// Spec returns the description of a kind.
func (p *PowerUps) Spec(kind PowerUpKind) PowerUpSpec {
	if !kind.Valid() {
		return PowerUpSpec{}
	}
	return p.specs[kind]
}

// Inventory returns a copy of the counts.
func (p *PowerUps) Inventory() Inventory {
	return p.inventory
}

// Count returns how many of kind are held.
func (p *PowerUps) Count(kind PowerUpKind) int {
	if !kind.Valid() {
		return 0
	}
	return p.inventory[kind]
}

// Held returns the activation words currently usable, in PowerUpOrder.
func (p *PowerUps) Held() []HeldPowerUp {
	var held []HeldPowerUp
	for _, kind := range PowerUpOrder {
		if p.inventory[kind] > 0 && p.specs[kind].Word != "" {
			held = append(held, HeldPowerUp{Kind: kind, Word: p.specs[kind].Word})
		}
	}
	return held
}

// ReservedLetters returns the first letters of held activation words.
// Spawning avoids them so typing an activation word never locks a falling word.
func (p *PowerUps) ReservedLetters() map[byte]bool {
	reserved := make(map[byte]bool)
	for _, h := range p.Held() {
		reserved[h.Word[0]] = true
	}
	return reserved
}

// Roll runs the drop roulette for one completed word.
// roll is a single uniform draw in [0, 1); bands are laid out in PowerUpOrder.
// A hit adds the kind to the inventory.
func (p *PowerUps) Roll(roll float64) (PowerUpKind, bool) {
	cumulative := 0.0
	for _, kind := range PowerUpOrder {
		cumulative += p.specs[kind].DropChance
		if roll < cumulative {
			p.inventory[kind]++
			return kind, true
		}
	}
	return 0, false
}

// Grant adds n of kind to the inventory.
func (p *PowerUps) Grant(kind PowerUpKind, n int) {
	if !kind.Valid() || n <= 0 {
		return
	}
	p.inventory[kind] += n
}

// Consume takes one of kind out of the inventory.
// For timed kinds it starts the effect, replacing a running one of the same kind.
// Returns false when none is held.
func (p *PowerUps) Consume(kind PowerUpKind) bool {
	if !kind.Valid() || p.inventory[kind] <= 0 {
		return false
	}
	p.inventory[kind]--

	spec := p.specs[kind]
	if !spec.Timed() {
		return true
	}

	effect := ActiveEffect{Kind: kind, Remaining: spec.Duration, Duration: spec.Duration}
	for i := range p.active {
		if p.active[i].Kind == kind {
			p.active[i] = effect
			return true
		}
	}
	p.active = append(p.active, effect)
	return true
}

// Tick counts running effects down by real time and returns the kinds that expired.
func (p *PowerUps) Tick(delta time.Duration) []PowerUpKind {
	var expired []PowerUpKind
	kept := p.active[:0]
	for _, e := range p.active {
		e.Remaining -= delta
		if e.Remaining <= 0 {
			expired = append(expired, e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	p.active = kept
	return expired
}

// Active returns a copy of the running effects.
func (p *PowerUps) Active() []ActiveEffect {
	out := make([]ActiveEffect, len(p.active))
	copy(out, p.active)
	return out
}

// IsActive reports whether an effect of kind is running.
func (p *PowerUps) IsActive(kind PowerUpKind) bool {
	for _, e := range p.active {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// TimeScale returns the multiplier applied to real time to get game time.
func (p *PowerUps) TimeScale() float64 {
	scale := 1.0
	for _, e := range p.active {
		if s := p.specs[e.Kind].TimeScale; s > 0 {
			scale *= s
		}
	}
	return scale
}

// ScoreMultiplier returns the multiplier applied to completion points.
func (p *PowerUps) ScoreMultiplier() int {
	mult := 1
	for _, e := range p.active {
		if m := p.specs[e.Kind].ScoreMultiplier; m > 0 {
			mult *= m
		}
	}
	return mult
}
