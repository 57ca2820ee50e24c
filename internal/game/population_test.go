package game

import (
	"testing"
	"time"
)

func TestPopulationSpawnFirstLetterUnique(t *testing.T) {
	var p Population
	var ids CounterIDs
	rng := NewSimpleRNG(7)
	pack := []string{"apple", "avocado", "banana", "blueberry", "cherry"}

	for i := 0; i < 10; i++ {
		p.Spawn(pack, nil, 4, rng, &ids)
	}

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (one per first letter)", p.Len())
	}
	seen := make(map[byte]bool)
	for _, w := range p.Words() {
		if seen[w.Text[0]] {
			t.Errorf("duplicate first letter %q on board", w.Text[0])
		}
		seen[w.Text[0]] = true
		if w.Lane < 0 || w.Lane >= 4 {
			t.Errorf("Lane = %d, expected [0, 4)", w.Lane)
		}
		if w.Y != 0 {
			t.Errorf("Y = %v, expected 0", w.Y)
		}
	}

	if _, ok := p.Spawn(pack, nil, 4, rng, &ids); ok {
		t.Errorf("Spawn() with exhausted pool = true, expected false")
	}
}

func TestPopulationSpawnRespectsReserved(t *testing.T) {
	var p Population
	var ids CounterIDs
	reserved := map[byte]bool{'s': true}

	if _, ok := p.Spawn([]string{"slow", "sun"}, reserved, 4, NewSimpleRNG(1), &ids); ok {
		t.Errorf("Spawn() = true, expected false when every word is reserved")
	}
	w, ok := p.Spawn([]string{"sun", "tree"}, reserved, 4, NewSimpleRNG(1), &ids)
	if !ok || w.Text != "tree" {
		t.Errorf("Spawn() = %q, %v, expected tree, true", w.Text, ok)
	}
}

func TestPopulationCompletedWordsFreeTheirLetter(t *testing.T) {
	var p Population
	var ids CounterIDs
	w, _ := p.Spawn([]string{"apple"}, nil, 1, NewSimpleRNG(1), &ids)
	p.Complete(w.ID, 0)

	if _, ok := p.Spawn([]string{"apple"}, nil, 1, NewSimpleRNG(1), &ids); !ok {
		t.Errorf("Spawn() = false, expected completed words to be ignored")
	}
}

func TestPopulationAdvance(t *testing.T) {
	var p Population
	p.words = []Word{
		{ID: 1, Text: "near", Y: 99.5, Status: WordFalling},
		{ID: 2, Text: "far", Y: 10, Status: WordFalling},
		{ID: 3, Text: "done", Y: 99.9, Status: WordCompleted},
	}

	lost := p.Advance(0.5)
	if len(lost) != 1 || lost[0].ID != 1 {
		t.Fatalf("Advance() lost = %v, expected word 1", lost)
	}
	if w, _ := p.Get(2); w.Y != 10.5 {
		t.Errorf("Y = %v, expected 10.5", w.Y)
	}
	if w, _ := p.Get(3); w.Y != 99.9 {
		t.Errorf("completed word moved to %v", w.Y)
	}

	p.Advance(-5)
	if w, _ := p.Get(2); w.Y != 10.5 {
		t.Errorf("negative advance moved word to %v", w.Y)
	}
}

func TestPopulationSweep(t *testing.T) {
	var p Population
	p.words = []Word{{ID: 1, Text: "cat", Status: WordFalling}}
	p.Complete(1, time.Second)

	if n := p.Sweep(time.Second+299*time.Millisecond, 300*time.Millisecond); n != 0 {
		t.Errorf("Sweep() before grace = %d, expected 0", n)
	}
	if n := p.Sweep(time.Second+300*time.Millisecond, 300*time.Millisecond); n != 1 {
		t.Errorf("Sweep() after grace = %d, expected 1", n)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", p.Len())
	}
}

func TestPopulationClearFalling(t *testing.T) {
	var p Population
	p.words = []Word{
		{ID: 1, Text: "a", Status: WordFalling},
		{ID: 2, Text: "b", Status: WordCompleted},
		{ID: 3, Text: "c", Status: WordFalling},
	}
	cleared := p.ClearFalling()
	if len(cleared) != 2 {
		t.Errorf("ClearFalling() = %d words, expected 2", len(cleared))
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", p.Len())
	}
}
