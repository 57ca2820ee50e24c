package game

import "time"

// PowerUpSlot is one HUD slot: a kind, its word and how many are held.
type PowerUpSlot struct {
	Kind   PowerUpKind
	Name   string
	Word   string
	Count  int
	Active bool
}

// EffectView is a running effect as the HUD shows it.
type EffectView struct {
	Kind      PowerUpKind
	Name      string
	Remaining time.Duration
	Fraction  float64 // Remaining share of the duration, 1 = just started
}

// Snapshot is a read-only copy of everything the UI draws.
type Snapshot struct {
	Status       Status
	Pack         string
	Lanes        int
	Words        []Word
	ActiveID     int64
	Buffer       string
	Score        int
	Lives        int
	InitialLives int
	Speed        float64
	Elapsed      time.Duration // Game time
	Played       time.Duration // Real time

	Particles     []Particle
	Popups        []ScorePopup
	Notifications []Notification

	Inventory Inventory
	Slots     []PowerUpSlot
	Effects   []EffectView
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Status:        g.session.Status(),
		Pack:          g.packID,
		Lanes:         g.cfg.Board.Lanes,
		Words:         g.population.Words(),
		ActiveID:      g.activeID,
		Buffer:        g.buffer,
		Score:         g.score,
		Lives:         g.lives,
		InitialLives:  g.cfg.Board.InitialLives,
		Speed:         g.speed,
		Elapsed:       g.elapsed,
		Played:        g.now,
		Particles:     g.effects.Particles(),
		Popups:        g.effects.Popups(),
		Notifications: g.effects.Notifications(),
		Inventory:     g.powerUps.Inventory(),
	}

	for _, kind := range PowerUpOrder {
		spec := g.powerUps.Spec(kind)
		s.Slots = append(s.Slots, PowerUpSlot{
			Kind:   kind,
			Name:   spec.Name,
			Word:   spec.Word,
			Count:  g.powerUps.Count(kind),
			Active: g.powerUps.IsActive(kind),
		})
	}
	for _, e := range g.powerUps.Active() {
		s.Effects = append(s.Effects, EffectView{
			Kind:      e.Kind,
			Name:      g.powerUps.Spec(e.Kind).Name,
			Remaining: e.Remaining,
			Fraction:  e.Fraction(),
		})
	}
	return s
}

// ActiveWord returns the locked word, if any.
func (s Snapshot) ActiveWord() (Word, bool) {
	if s.ActiveID == 0 {
		return Word{}, false
	}
	for _, w := range s.Words {
		if w.ID == s.ActiveID {
			return w, true
		}
	}
	return Word{}, false
}
