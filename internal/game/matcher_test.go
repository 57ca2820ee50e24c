package game

import "testing"

func TestResolve(t *testing.T) {
	cat := Word{ID: 1, Text: "cat", Status: WordFalling}
	car := Word{ID: 2, Text: "car", Status: WordFalling}
	dog := Word{ID: 3, Text: "dog", Status: WordFalling}
	falling := []Word{cat, car, dog}
	slow := []HeldPowerUp{{Kind: TimeWarp, Word: "slow"}}

	tests := []struct {
		name     string
		ctx      MatchContext
		expected DecisionKind
		wordID   int64
	}{
		{"empty buffer no lock", MatchContext{Falling: falling}, DecideNone, 0},
		{"first prefix match locks", MatchContext{Buffer: "ca", Previous: "c", Falling: falling}, DecideLock, 1},
		{"tie goes to spawn order", MatchContext{Buffer: "ca", Falling: []Word{car, cat}}, DecideLock, 2},
		{"no match clears", MatchContext{Buffer: "x", Falling: falling}, DecideClear, 0},
		{"completed words ignored", MatchContext{Buffer: "d", Falling: []Word{{ID: 9, Text: "dog", Status: WordCompleted}}}, DecideClear, 0},
		{"locked exact completes", MatchContext{Buffer: "cat", Previous: "ca", Locked: &cat, Falling: falling}, DecideComplete, 1},
		{"locked prefix continues", MatchContext{Buffer: "ca", Previous: "c", Locked: &cat, Falling: falling}, DecideContinue, 1},
		{"diverging keystroke is typo", MatchContext{Buffer: "cax", Previous: "ca", Locked: &cat, Falling: falling}, DecideTypo, 1},
		{"shrinking divergence is not typo", MatchContext{Buffer: "cx", Previous: "cxy", Locked: &cat, Falling: falling}, DecideContinue, 1},
		{"emptied buffer releases", MatchContext{Buffer: "", Previous: "c", Locked: &cat, Falling: falling}, DecideRelease, 1},
		{"activation word wins", MatchContext{Buffer: "slow", Previous: "slo", Falling: falling, Held: slow}, DecideActivate, 0},
		{"activation pre-empts lock", MatchContext{Buffer: "slow", Previous: "c", Locked: &cat, Falling: falling, Held: slow}, DecideActivate, 0},
		{"activation prefix waits", MatchContext{Buffer: "sl", Previous: "s", Falling: falling, Held: slow}, DecideWaitPowerUp, 0},
		{"unheld activation word clears", MatchContext{Buffer: "sl", Falling: falling}, DecideClear, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.ctx)
			if d.Kind != tt.expected {
				t.Errorf("Resolve().Kind = %v, expected %v (rule %q)", d.Kind, tt.expected, d.Rule)
			}
			if tt.wordID != 0 && d.WordID != tt.wordID {
				t.Errorf("Resolve().WordID = %d, expected %d", d.WordID, tt.wordID)
			}
			if d.Kind != DecideNone && d.Rule == "" {
				t.Errorf("Resolve().Rule is empty for %v", d.Kind)
			}
		})
	}
}

func TestResolveActivateKind(t *testing.T) {
	held := []HeldPowerUp{{Kind: TimeWarp, Word: "slow"}, {Kind: SystemShock, Word: "blast"}}
	d := Resolve(MatchContext{Buffer: "blast", Held: held})
	if d.Kind != DecideActivate || d.PowerUp != SystemShock {
		t.Errorf("Resolve() = %v/%v, expected activate/system_shock", d.Kind, d.PowerUp)
	}
}
