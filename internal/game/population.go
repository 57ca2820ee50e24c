package game

import "time"

// Population is the set of words on the board in spawn order.
// Spawn order is the tie-break whenever several words match a prefix.
type Population struct {
	words []Word
}

// Reset removes every word.
func (p *Population) Reset() {
	p.words = p.words[:0]
}

// Len returns the number of words, completed ones included.
func (p *Population) Len() int {
	return len(p.words)
}

// Words returns a copy of all words in spawn order.
func (p *Population) Words() []Word {
	out := make([]Word, len(p.words))
	copy(out, p.words)
	return out
}

// Falling returns a copy of the falling words in spawn order.
func (p *Population) Falling() []Word {
	out := make([]Word, 0, len(p.words))
	for _, w := range p.words {
		if w.Status == WordFalling {
			out = append(out, w)
		}
	}
	return out
}

// Get returns the word with the given id.
func (p *Population) Get(id int64) (Word, bool) {
	if i := p.index(id); i >= 0 {
		return p.words[i], true
	}
	return Word{}, false
}

func (p *Population) index(id int64) int {
	if id == 0 {
		return -1
	}
	for i := range p.words {
		if p.words[i].ID == id {
			return i
		}
	}
	return -1
}

// Spawn adds one word at the top of a random lane.
// Candidates exclude words whose first letter is already used by a falling
// word or reserved by a held power-up. Returns false if nothing can spawn.
func (p *Population) Spawn(pack []string, reserved map[byte]bool, lanes int, rng RNG, ids IDSource) (Word, bool) {
	if lanes <= 0 {
		return Word{}, false
	}

	taken := make(map[byte]bool, len(p.words)+len(reserved))
	for b := range reserved {
		taken[b] = true
	}
	for _, w := range p.words {
		if w.Status == WordFalling && w.Text != "" {
			taken[w.Text[0]] = true
		}
	}

	candidates := make([]string, 0, len(pack))
	for _, text := range pack {
		if text == "" || taken[text[0]] {
			continue
		}
		candidates = append(candidates, text)
	}
	if len(candidates) == 0 {
		return Word{}, false
	}

	w := Word{
		ID:     ids.Next(),
		Text:   candidates[rng.Intn(len(candidates))],
		Lane:   rng.Intn(lanes),
		Y:      0,
		Status: WordFalling,
	}
	p.words = append(p.words, w)
	return w, true
}

// Advance moves every falling word down by dy percent.
// Words reaching the danger edge are removed and returned.
func (p *Population) Advance(dy float64) []Word {
	if dy < 0 {
		dy = 0
	}

	var lost []Word
	kept := p.words[:0]
	for _, w := range p.words {
		if w.Status == WordFalling {
			w.Y += dy
			if w.Y >= BoardHeight {
				lost = append(lost, w)
				continue
			}
		}
		kept = append(kept, w)
	}
	p.words = kept
	return lost
}

// Complete marks a falling word as completed at the given real-clock time.
func (p *Population) Complete(id int64, at time.Duration) (Word, bool) {
	i := p.index(id)
	if i < 0 || p.words[i].Status != WordFalling {
		return Word{}, false
	}
	p.words[i].Status = WordCompleted
	p.words[i].CompletedAt = at
	return p.words[i], true
}

// Sweep drops completed words whose grace period has passed.
func (p *Population) Sweep(now, grace time.Duration) int {
	removed := 0
	kept := p.words[:0]
	for _, w := range p.words {
		if w.Status == WordCompleted && now-w.CompletedAt >= grace {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	p.words = kept
	return removed
}

// ClearFalling removes every falling word and returns them.
func (p *Population) ClearFalling() []Word {
	var cleared []Word
	kept := p.words[:0]
	for _, w := range p.words {
		if w.Status == WordFalling {
			cleared = append(cleared, w)
			continue
		}
		kept = append(kept, w)
	}
	p.words = kept
	return cleared
}
