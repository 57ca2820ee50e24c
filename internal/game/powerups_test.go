package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/neontype/internal/config"
)

func newTestPowerUps() *PowerUps {
	return NewPowerUps(config.DefaultGameConfig().PowerUps)
}

func TestPowerUpsRoll(t *testing.T) {
	tests := []struct {
		roll     float64
		expected PowerUpKind
		hit      bool
	}{
		{0.0, TimeWarp, true},
		{0.029, TimeWarp, true},
		{0.031, ScoreSurge, true},
		{0.059, ScoreSurge, true},
		{0.065, SystemShock, true},
		{0.071, 0, false},
		{0.99, 0, false},
	}

	for _, tt := range tests {
		p := newTestPowerUps()
		kind, ok := p.Roll(tt.roll)
		if ok != tt.hit || (ok && kind != tt.expected) {
			t.Errorf("Roll(%v) = %v, %v, expected %v, %v", tt.roll, kind, ok, tt.expected, tt.hit)
		}
		total := 0
		for _, n := range p.Inventory() {
			total += n
		}
		if (total == 1) != tt.hit {
			t.Errorf("Roll(%v) inventory total = %d", tt.roll, total)
		}
	}
}

func TestPowerUpsConsume(t *testing.T) {
	p := newTestPowerUps()

	if p.Consume(TimeWarp) {
		t.Errorf("Consume() with empty inventory = true, expected false")
	}
	if p.Count(TimeWarp) != 0 {
		t.Errorf("Count() = %d, expected 0", p.Count(TimeWarp))
	}

	p.Grant(TimeWarp, 2)
	if !p.Consume(TimeWarp) {
		t.Fatalf("Consume() = false, expected true")
	}
	if p.Count(TimeWarp) != 1 {
		t.Errorf("Count() = %d, expected 1", p.Count(TimeWarp))
	}
	if !p.IsActive(TimeWarp) {
		t.Errorf("IsActive() = false, expected true")
	}
	if s := p.TimeScale(); s != 0.5 {
		t.Errorf("TimeScale() = %v, expected 0.5", s)
	}

	p.Tick(5 * time.Second)
	p.Consume(TimeWarp)
	active := p.Active()
	if len(active) != 1 {
		t.Fatalf("Active() = %d effects, expected 1", len(active))
	}
	if active[0].Remaining != 8*time.Second {
		t.Errorf("Remaining = %v, expected the duration to restart at 8s", active[0].Remaining)
	}
}

func TestPowerUpsTickExpires(t *testing.T) {
	p := newTestPowerUps()
	p.Grant(ScoreSurge, 1)
	p.Consume(ScoreSurge)

	if m := p.ScoreMultiplier(); m != 2 {
		t.Errorf("ScoreMultiplier() = %d, expected 2", m)
	}
	if expired := p.Tick(9 * time.Second); len(expired) != 0 {
		t.Errorf("Tick() expired %v early", expired)
	}
	if f := p.Active()[0].Fraction(); f < 0.09 || f > 0.11 {
		t.Errorf("Fraction() = %v, expected 0.1", f)
	}
	expired := p.Tick(time.Second)
	if len(expired) != 1 || expired[0] != ScoreSurge {
		t.Errorf("Tick() expired = %v, expected [score_surge]", expired)
	}
	if m := p.ScoreMultiplier(); m != 1 {
		t.Errorf("ScoreMultiplier() after expiry = %d, expected 1", m)
	}
}

func TestPowerUpsSystemShockIsInstant(t *testing.T) {
	p := newTestPowerUps()
	p.Grant(SystemShock, 1)
	if !p.Consume(SystemShock) {
		t.Fatalf("Consume() = false, expected true")
	}
	if len(p.Active()) != 0 {
		t.Errorf("Active() = %v, expected no timed effect", p.Active())
	}
}

func TestPowerUpsReservedLetters(t *testing.T) {
	p := newTestPowerUps()
	if len(p.ReservedLetters()) != 0 {
		t.Errorf("ReservedLetters() = %v, expected none", p.ReservedLetters())
	}
	p.Grant(ScoreSurge, 1)
	p.Grant(SystemShock, 1)
	reserved := p.ReservedLetters()
	if !reserved['p'] || !reserved['b'] || reserved['s'] {
		t.Errorf("ReservedLetters() = %v, expected p and b", reserved)
	}
}
