package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/neontype/internal/config"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// fixedRNG returns the same values forever. f = 0.99 never drops a power-up.
type fixedRNG struct {
	f float64
	i int
}

func (r *fixedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.i % n
}

func (r *fixedRNG) Float64() float64 {
	return r.f
}

func newTestGame(pack ...string) *Game {
	return New(config.DefaultGameConfig(), pack, WithRNG(&fixedRNG{f: 0.99}), WithPackID("test"))
}

// startPlaying starts a run and advances frames until Playing.
func startPlaying(t *testing.T, g *Game) time.Time {
	t.Helper()

	if !g.Start() {
		t.Fatalf("Start() = false, expected true")
	}
	now := epoch
	g.Update(now)
	for i := 0; i < 200 && g.Status() != StatusPlaying; i++ {
		now = now.Add(10 * time.Millisecond)
		g.Update(now)
	}
	if g.Status() != StatusPlaying {
		t.Fatalf("Status() = %v, expected playing", g.Status())
	}
	return now
}

// addWord places a falling word directly on the board.
func addWord(g *Game, text string, lane int, y float64) Word {
	w := Word{ID: g.ids.Next(), Text: text, Lane: lane, Y: y, Status: WordFalling}
	g.population.words = append(g.population.words, w)
	return w
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
