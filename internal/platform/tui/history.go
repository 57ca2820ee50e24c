package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
)

// History layout constants
const (
	maxHistoryRows  = 100
	historyMinWidth = 50
)

// historyMode selects what the table lists.
type historyMode int

const (
	historyRecent historyMode = iota
	historyTop
)

func (m historyMode) String() string {
	if m == historyTop {
		return "TOP SCORES"
	}
	return "RECENT RUNS"
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Mode     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.NextPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev pack"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/top"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the score history screen.
type HistoryModel struct {
	packs      []string // "" first, meaning all packs
	packCursor int
	mode       historyMode
	store      *storage.Store
	logger     *log.Logger
	records    []storage.ScoreRecord
	stats      storage.Stats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	standalone bool // Back and quit end the program
	quitting   bool
	goingBack  bool
}

// NewHistoryModel creates a history view. logger may be nil.
func NewHistoryModel(store *storage.Store, logger *log.Logger, width, height int) HistoryModel {
	packs := []string{""}
	for _, p := range registry.List() {
		packs = append(packs, p.ID)
	}

	h := help.New()
	h.Width = width

	m := HistoryModel{
		packs:  packs,
		store:  store,
		logger: logger,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the view.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Pack", Width: 10},
		{Title: "Level", Width: 8},
		{Title: "Date", Width: 16},
	}

	tableWidth := m.width - 6
	if tableWidth > historyMinWidth+10 {
		columns[2].Width = 14
		columns[4].Width = 18
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// pack returns the current pack filter, "" for all.
func (m HistoryModel) pack() string {
	return m.packs[m.packCursor]
}

// load queries the store for the current mode and filter.
func (m *HistoryModel) load() {
	m.records, m.loadErr = nil, nil
	m.stats = storage.Stats{}

	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	switch m.mode {
	case historyTop:
		m.records, err = m.store.TopScores(m.pack(), maxHistoryRows)
	default:
		var all []storage.ScoreRecord
		all, err = m.store.History(0)
		m.records = filterRecent(all, m.pack(), maxHistoryRows)
	}
	if err == nil {
		m.stats, err = m.store.Stats(m.pack())
	}
	if err != nil {
		m.loadErr = err
		if m.logger != nil {
			m.logger.Error("cannot load history", "error", err)
		}
	}
	m.updateTableRows()
}

// filterRecent keeps runs of one pack, newest first, at most limit.
func filterRecent(records []storage.ScoreRecord, pack string, limit int) []storage.ScoreRecord {
	out := make([]storage.ScoreRecord, 0, min(len(records), limit))
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		if pack == "" || records[i].Pack == pack {
			out = append(out, records[i])
		}
	}
	return out
}

// updateTableRows updates the table with the loaded records.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Pack,
			r.Difficulty,
			r.At.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Mode):
			if m.mode == historyRecent {
				m.mode = historyTop
			} else {
				m.mode = historyRecent
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.NextPack):
			m.packCursor = (m.packCursor + 1) % len(m.packs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			m.packCursor--
			if m.packCursor < 0 {
				m.packCursor = len(m.packs) - 1
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	filter := "all packs"
	if m.pack() != "" {
		filter = m.pack()
	}
	title := fmt.Sprintf("%s  <  %s  >", m.mode, filter)
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("runs %d   best %d   average %.0f", m.stats.Runs, m.stats.Best, m.stats.Average)
	b.WriteString(centerText(accent.Render(stats), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is unavailable.\nThe score database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the history.\nSee the log for details.")
	case len(m.records) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a game with a score to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user closed the view.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen as its own program.
func RunHistory(store *storage.Store, logger *log.Logger, width, height int) error {
	model := NewHistoryModel(store, logger, width, height)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
