package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
)

// SessionOptions configures a session.
type SessionOptions struct {
	Config     config.GameConfig // Before the difficulty preset
	Difficulty config.DifficultyPreset
	Pack       *registry.Pack  // Start straight into this pack; nil shows the menu
	Extra      []registry.Pack // Unregistered packs offered in the menu
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
}

// SessionModel manages the full flow: pack menu -> game -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	store     *storage.Store
	menu      MenuModel
	history   *HistoryModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(store *storage.Store, opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := SessionModel{
		opts:  opts,
		store: store,
		menu:  NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Difficulty, opts.Extra...),
	}
	if opts.Pack != nil {
		m.gameModel = m.newGame(*opts.Pack, opts.Difficulty)
	}
	return m
}

func (m SessionModel) newGame(pack registry.Pack, preset config.DifficultyPreset) *GameModel {
	cfg := m.opts.Config
	config.ApplyPreset(&cfg, preset)

	rc := m.opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	gm := NewGameModel(GameSetup{Config: cfg, Difficulty: preset, Pack: pack}, m.store, rc, m.opts.Logger)
	return &gm
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.history != nil:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	if menu, ok := updated.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		h := NewHistoryModel(m.store, m.opts.Logger, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.history = &h
		m.menu.wantsHistory = false
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		pack, err := m.resolve(selected.PackID)
		m.menu.selected = nil
		if err != nil {
			// Shouldn't happen since the menu only lists known packs
			m.opts.Logger.Error("cannot load pack", "pack", selected.PackID, "error", err)
			return m, nil
		}

		m.gameModel = m.newGame(pack, m.menu.Difficulty())
		m.opts.Logger.Info("pack selected", "pack", pack.ID, "difficulty", m.menu.Difficulty())
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) resolve(id string) (registry.Pack, error) {
	for _, p := range m.opts.Extra {
		if p.ID == id {
			return p, nil
		}
	}
	return registry.Create(id)
}

// updateHistory handles updates when the history view is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.gameModel.Update(msg)
	if gm, ok := updated.(GameModel); ok {
		m.gameModel = &gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.menu.Difficulty(), m.opts.Extra...)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.history != nil:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(store *storage.Store, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
