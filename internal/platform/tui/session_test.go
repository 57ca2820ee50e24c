package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/registry"
)

var testPack = registry.Pack{ID: "file:test", Title: "test", Words: []string{"cat", "dog"}}

func newTestSession(pack *registry.Pack) SessionModel {
	return NewSessionModel(nil, SessionOptions{
		Config:     config.DefaultGameConfig(),
		Difficulty: config.DifficultyNormal,
		Pack:       pack,
		Extra:      []registry.Pack{testPack},
		Runtime:    core.DefaultConfig(),
	})
}

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	updated, _ := m.Update(msg)
	return updated.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(nil)
	if m.gameModel != nil {
		t.Fatalf("session without a pack should start in the menu")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatalf("enter in the menu did not start a game")
	}
	if got := m.gameModel.setup.Pack.ID; got != testPack.ID {
		t.Errorf("game pack = %q, expected %q", got, testPack.ID)
	}
	if got := m.gameModel.setup.Difficulty; got != config.DifficultyHard {
		t.Errorf("game difficulty = %q, expected %q", got, config.DifficultyHard)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.gameModel != nil {
		t.Fatalf("esc on the title screen did not return to the menu")
	}
	if got := m.menu.Difficulty(); got != config.DifficultyHard {
		t.Errorf("menu difficulty after returning = %q, expected %q", got, config.DifficultyHard)
	}
}

func TestSessionDirectPack(t *testing.T) {
	pack := testPack
	m := newTestSession(&pack)
	if m.gameModel == nil {
		t.Fatalf("session with a pack should start in the game")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Errorf("ctrl+c should quit the session")
	}
}

func TestSessionHistoryOverlay(t *testing.T) {
	m := newTestSession(nil)

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil {
		t.Fatalf("tab in the menu did not open the history")
	}
	if m.menu.WantsHistory() {
		t.Errorf("history request was not consumed")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.history != nil {
		t.Errorf("esc did not close the history")
	}

	m = sendSession(m, runes("q"))
	if !m.quitting {
		t.Errorf("q in the menu should quit")
	}
}

func TestMenuBounds(t *testing.T) {
	m := NewMenuModel(80, 24, config.DifficultyFixed, testPack)

	for range 3 {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = updated.(MenuModel)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(MenuModel)
	if got := m.Difficulty(); got != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, expected %q", got, config.DifficultyFixed)
	}

	for range 10 {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = updated.(MenuModel)
	}
	if got := m.Difficulty(); got != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, expected %q", got, config.DifficultyEasy)
	}
}
