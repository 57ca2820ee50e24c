package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/registry"
)

// MenuItem represents a selectable word pack in the menu.
type MenuItem struct {
	PackID string
	Title  string
	Size   int
}

// MenuKeyMap defines the key bindings of the pack menu.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Harder  key.Binding
	Easier  key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Harder, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Easier, k.Harder},
		{k.Select, k.History, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("left/right", "difficulty"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "easier"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the pack and difficulty picker.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	preset       int // Index into config.Presets
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	quitting     bool
	selected     *MenuItem // Set when user picks a pack
	wantsHistory bool
}

// NewMenuModel creates a menu over the registered packs.
// extra packs (e.g. loaded from --words) are listed first.
func NewMenuModel(width, height int, preset config.DifficultyPreset, extra ...registry.Pack) MenuModel {
	items := make([]MenuItem, 0, len(extra)+4)
	for _, p := range extra {
		items = append(items, MenuItem{PackID: p.ID, Title: p.Title, Size: len(p.Words)})
	}
	for _, p := range registry.List() {
		items = append(items, MenuItem{PackID: p.ID, Title: p.Title, Size: p.Size})
	}

	presetIdx := 0
	for i, p := range config.Presets {
		if p == preset {
			presetIdx = i
		}
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  items,
		preset: presetIdx,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Harder):
		if m.preset < len(config.Presets)-1 {
			m.preset++
		}

	case key.Matches(msg, m.keys.Easier):
		if m.preset > 0 {
			m.preset--
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case key.Matches(msg, m.keys.History):
		m.wantsHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("N E O N   T Y P E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a word pack", m.width))
	b.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		line := fmt.Sprintf("%s%-18s %4d words", cursor, item.Title, item.Size)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	presets := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		if i == m.preset {
			presets[i] = accent.Render("[" + string(p) + "]")
		} else {
			presets[i] = helpStyle.Render(" " + string(p) + " ")
		}
	}
	b.WriteString(centerText("difficulty  "+strings.Join(presets, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history view.
func (m MenuModel) WantsHistory() bool {
	return m.wantsHistory
}
