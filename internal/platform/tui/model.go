package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/game"
	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
)

// maxInputLen bounds the text input; no word is anywhere near this long.
const maxInputLen = 32

// idleTickRate paces the ticker on screens where nothing moves or is scheduled.
const idleTickRate = 10

// GameSetup is everything needed to build one game.
type GameSetup struct {
	Config     config.GameConfig // Difficulty preset already applied
	Difficulty config.DifficultyPreset
	Pack       registry.Pack
}

// GameModel runs a single game: it ticks the simulation, feeds the text
// input into the typing buffer and records finished runs.
type GameModel struct {
	game     *game.Game
	setup    GameSetup
	screen   *core.Screen
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	history  *HistoryModel
	loop     uint64
	best     int
	quitting bool
	backMenu bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(setup GameSetup, store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) GameModel {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxInputLen
	ti.Focus()

	h := help.New()
	h.Width = rc.ScreenW

	m := GameModel{
		game: game.New(setup.Config, setup.Pack.Words,
			game.WithSeed(rc.Seed),
			game.WithLogger(logger),
			game.WithPackID(setup.Pack.ID),
		),
		setup:   setup,
		screen:  core.NewScreen(rc.ScreenW, max(0, rc.ScreenH-1)),
		input:   ti,
		keys:    DefaultKeyMap(),
		help:    h,
		store:   store,
		logger:  logger,
		runtime: rc,
		loop:    loopIDs.Add(1),
	}
	m.best = m.highScore()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loop, m.tickRate())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.history != nil {
		return m.updateHistory(msg)
	}

	status := m.game.Status()
	action := m.keys.Action(msg, status)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHistory:
		h := NewHistoryModel(m.store, m.logger, m.runtime.ScreenW, m.runtime.ScreenH)
		m.history = &h
		return m, nil

	case core.ActionBack:
		if status == game.StatusReady {
			m.backMenu = true
			return m, nil
		}

	case core.ActionNone:
		if status == game.StatusPlaying {
			return m.handleTyping(msg)
		}
		return m, nil
	}

	m.game.HandleAction(action)
	m.syncInput()
	return m, nil
}

// handleTyping passes a key to the text input and the new value to the game.
func (m GameModel) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.game.SetInput(value)
	}
	m.syncInput()
	return m, cmd
}

// syncInput makes the text input show what the game accepted,
// e.g. an empty field after a completed word.
func (m *GameModel) syncInput() {
	if buf := m.game.Buffer(); buf != m.input.Value() {
		m.input.SetValue(buf)
		m.input.CursorEnd()
	}
}

func (m GameModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.history.Update(msg)
	h, ok := updated.(HistoryModel)
	if !ok {
		m.history = nil
		return m, nil
	}

	switch {
	case h.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case h.IsGoingBack():
		m.history = nil
		return m, nil
	}
	m.history = &h
	return m, cmd
}

// handleResize processes window resize events.
// Word positions are relative, so the game keeps running.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width

	if m.history != nil {
		return m.updateHistory(msg)
	}
	return m, nil
}

// handleTick advances the game to the frame time.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Update(now)

	for _, e := range m.game.Events() {
		m.handleEvent(e)
	}
	m.syncInput()

	return m, tickCmd(m.loop, m.tickRate())
}

// tickRate returns the frame rate for the current status. Outside Playing the
// ticker only serves session transition timers, so the static title and
// game-over screens tick at the idle rate.
func (m GameModel) tickRate() int {
	switch m.game.Status() {
	case game.StatusReady, game.StatusGameOver:
		return min(idleTickRate, m.runtime.TickRate)
	default:
		return m.runtime.TickRate
	}
}

func (m *GameModel) handleEvent(e game.Event) {
	switch e.Kind {
	case game.EventGameOver:
		if e.Score > 0 {
			m.record(e.Score)
		}
	case game.EventPowerUpCollected, game.EventPowerUpActivated:
		m.logger.Debug("power-up", "event", e.Kind, "kind", e.PowerUp)
	}
}

// record appends a finished run to the history.
// Failures are logged and otherwise ignored; the game goes on.
func (m *GameModel) record(score int) {
	if m.store == nil {
		return
	}

	rec := storage.ScoreRecord{
		RunID:      uuid.NewString(),
		Pack:       m.setup.Pack.ID,
		Difficulty: string(m.setup.Difficulty),
		Score:      score,
		At:         time.Now(),
	}
	if _, err := m.store.AppendScore(rec); err != nil {
		m.logger.Error("cannot save score", "error", err, "score", score)
		return
	}
	m.logger.Info("score saved", "run", rec.RunID, "score", score, "pack", rec.Pack)

	if score > m.best {
		m.best = score
	}
}

func (m GameModel) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.setup.Pack.ID)
	if err != nil {
		m.logger.Warn("cannot read high score", "error", err)
		return 0
	}
	return best
}

// View renders the board and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	status := m.game.Status()
	m.game.Render(m.screen)

	footer := m.help.View(statusHelp{keys: m.keys, status: status})
	if m.best > 0 {
		footer += fmt.Sprintf("   best %d", m.best)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Game returns the underlying game.
func (m GameModel) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game for the pack menu.
func (m GameModel) BackToMenu() bool {
	return m.backMenu
}
