package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/game"
	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
)

const frame = 50 * time.Millisecond

func newTestModel(t *testing.T, lives int) (GameModel, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultGameConfig()
	cfg.Board.InitialLives = lives
	setup := GameSetup{
		Config:     cfg,
		Difficulty: config.DifficultyNormal,
		Pack:       registry.Pack{ID: "test", Title: "Test", Words: []string{"cat"}},
	}
	rc := core.DefaultConfig()
	rc.Seed = 42
	return NewGameModel(setup, store, rc, nil), store
}

func send(m GameModel, msg tea.Msg) GameModel {
	updated, _ := m.Update(msg)
	return updated.(GameModel)
}

// tickUntil advances frames until done reports true or the budget runs out.
func tickUntil(t *testing.T, m GameModel, at *time.Time, budget int, done func(GameModel) bool) GameModel {
	t.Helper()
	for range budget {
		if done(m) {
			return m
		}
		*at = at.Add(frame)
		m = send(m, TickMsg{Loop: m.loop, At: *at})
	}
	if !done(m) {
		t.Fatalf("condition not reached after %d frames (status %v)", budget, m.Game().Status())
	}
	return m
}

func TestGameModelTypesAndRecords(t *testing.T) {
	m, store := newTestModel(t, 1)
	at := time.Unix(1_700_000_000, 0)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tickUntil(t, m, &at, 100, func(m GameModel) bool {
		return m.Game().Status() == game.StatusPlaying
	})
	m = tickUntil(t, m, &at, 100, func(m GameModel) bool {
		return len(m.Game().Snapshot().Words) == 1
	})

	for _, r := range "cat" {
		m = send(m, runes(string(r)))
	}
	if got := m.Game().Score(); got != 30 {
		t.Errorf("Score() = %d, expected 30", got)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input after completion = %q, expected empty", got)
	}

	m = tickUntil(t, m, &at, 20000, func(m GameModel) bool {
		return m.Game().Status() == game.StatusGameOver
	})

	records, err := store.History(0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("History() = %d records, expected 1", len(records))
	}
	rec := records[0]
	if rec.Score != 30 || rec.Pack != "test" || rec.Difficulty != "normal" {
		t.Errorf("record = %+v, expected score 30 for pack test on normal", rec)
	}
	if rec.RunID == "" {
		t.Errorf("record has no run id")
	}
	if m.best != 30 {
		t.Errorf("best = %d, expected 30", m.best)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, _ := newTestModel(t, 5)
	at := time.Unix(1_700_000_000, 0)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 50 {
		at = at.Add(frame)
		m = send(m, TickMsg{Loop: m.loop + 1, At: at})
	}
	if got := m.Game().Status(); got != game.StatusTransitioningToGame {
		t.Errorf("Status() after stale ticks = %v, expected %v", got, game.StatusTransitioningToGame)
	}
}

func TestGameModelKeysOutsidePlay(t *testing.T) {
	m, _ := newTestModel(t, 5)

	m = send(m, runes("c"))
	if got := m.Game().Buffer(); got != "" {
		t.Errorf("Buffer() on the title screen = %q, expected empty", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil {
		t.Fatalf("tab did not open the history")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.history != nil {
		t.Errorf("esc did not close the history")
	}
	if m.BackToMenu() {
		t.Errorf("closing the history should not leave the game")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Errorf("esc on the title screen should return to the menu")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Errorf("ctrl+c should quit")
	}
}

func TestGameModelTickRate(t *testing.T) {
	m, _ := newTestModel(t, 5)

	if got := m.tickRate(); got != idleTickRate {
		t.Errorf("tickRate() on the title screen = %d, expected %d", got, idleTickRate)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.tickRate(); got != m.runtime.TickRate {
		t.Errorf("tickRate() during the start transition = %d, expected %d", got, m.runtime.TickRate)
	}
}
