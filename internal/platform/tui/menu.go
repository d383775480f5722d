package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is one registered mode together with its history.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Stats       *storage.GameStats // nil without a store
}

// Best returns the high score of the mode, 0 if none.
func (it MenuItem) Best() int {
	if it.Stats == nil {
		return 0
	}
	return it.Stats.HighScore
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered mode with the statistics in store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	for _, mode := range modes {
		item := MenuItem{GameID: mode.ID, Title: mode.Title, Description: mode.Description}
		if store != nil {
			if stats, err := store.GetGameStats(mode.ID); err == nil {
				item.Stats = stats
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(menuTitleStyle.Render("T E T R A"), width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(center(menuDim.Render("No modes registered."), width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		line := fmt.Sprintf("  %-20s", item.Title)
		if best := item.Best(); best > 0 {
			line += fmt.Sprintf("  best %7d", best)
		} else {
			line += strings.Repeat(" ", 13)
		}
		if i == m.cursor {
			line = menuCursor.Render(">" + line[1:])
		}
		b.WriteString(center(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	cur := m.items[m.cursor]
	if cur.Description != "" {
		b.WriteString(center(cur.Description, width))
		b.WriteString("\n")
	}
	if st := cur.Stats; st != nil && st.GamesCount > 0 {
		hist := fmt.Sprintf("played %d  cleared %d  best lines %d", st.GamesCount, st.Cleared, st.MaxLines)
		b.WriteString(center(menuDim.Render(hist), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(menuDim.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers plain text within width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// center centers text that may carry ANSI styling.
func center(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Title           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
		result.Title = m.Selected().Title
	default:
		result.Quit = true
	}
	return result, nil
}
