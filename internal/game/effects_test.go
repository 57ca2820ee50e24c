package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/neontype/internal/core"
)

func TestEffectsBurst(t *testing.T) {
	e := NewEffects(12, 0.02, 1500*time.Millisecond, 2*time.Second)
	var ids CounterIDs
	e.Burst(12.5, 40, NewSimpleRNG(3), &ids)

	particles := e.Particles()
	if len(particles) != 12 {
		t.Fatalf("Particles() = %d, expected 12", len(particles))
	}
	for _, p := range particles {
		if p.X != 12.5 || p.Y != 40 {
			t.Errorf("particle at (%v, %v), expected (12.5, 40)", p.X, p.Y)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Errorf("Size = %v, expected [2, 6)", p.Size)
		}
		if p.Opacity != 1 {
			t.Errorf("Opacity = %v, expected 1", p.Opacity)
		}
	}
}

func TestEffectsParticlesFade(t *testing.T) {
	e := NewEffects(4, 0.02, time.Second, time.Second)
	var ids CounterIDs
	e.Burst(50, 50, NewSimpleRNG(3), &ids)

	for i := 0; i < 49; i++ {
		e.Tick(0)
	}
	if n := len(e.Particles()); n != 4 {
		t.Errorf("Particles() after 49 ticks = %d, expected 4", n)
	}
	e.Tick(0)
	e.Tick(0)
	if n := len(e.Particles()); n != 0 {
		t.Errorf("Particles() after fade = %d, expected 0", n)
	}
}

func TestEffectsExpiry(t *testing.T) {
	e := NewEffects(0, 0.02, 1500*time.Millisecond, 2*time.Second)
	var ids CounterIDs
	e.Popup("+30", 10, 10, core.ColorBrightGreen, time.Second, &ids)
	e.Notify(TimeWarp, "Time Warp collected!", time.Second, &ids)

	e.Tick(2499 * time.Millisecond)
	if len(e.Popups()) != 1 || len(e.Notifications()) != 1 {
		t.Fatalf("entries expired early")
	}
	e.Tick(2500 * time.Millisecond)
	if len(e.Popups()) != 0 {
		t.Errorf("Popups() = %d, expected 0", len(e.Popups()))
	}
	if len(e.Notifications()) != 1 {
		t.Errorf("Notifications() = %d, expected 1", len(e.Notifications()))
	}
	e.Tick(3 * time.Second)
	if len(e.Notifications()) != 0 {
		t.Errorf("Notifications() = %d, expected 0", len(e.Notifications()))
	}

	e.Popup("-5", 0, 0, core.ColorBrightRed, 0, &ids)
	e.Reset()
	if len(e.Popups()) != 0 {
		t.Errorf("Popups() after Reset = %d, expected 0", len(e.Popups()))
	}
}
