package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

const (
	maxRecords         = 100 // rows loaded per mode
	minWidthForDetails = 100 // below this the detail pane replaces the table
	detailWidth        = 30
)

var (
	boardBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Details  key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Sort, k.Details, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Sort, k.Details},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "best/recent")),
		Details:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the recorded games of each mode.
type ScoreboardModel struct {
	modes    []registry.Mode
	mode     int
	store    *storage.Store
	config   core.RuntimeConfig
	recent   bool // latest games instead of the best
	details  bool
	records  []storage.GameRecord
	summary  string
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
	back     bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		config: cfg,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
	}
	m.help.Width = cfg.ScreenW
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.config.ScreenW >= minWidthForDetails
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Lvl", Width: 4},
		{Title: "Lines", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.config.ScreenH-12, 3)),
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

// load reads the records and aggregates of the current mode.
func (m *ScoreboardModel) load() {
	m.records, m.summary = nil, ""
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		var err error
		if m.recent {
			m.records, err = m.store.RecentRecords(id, maxRecords)
		} else {
			m.records, err = m.store.TopRecords(id, maxRecords)
		}
		if err != nil {
			m.records = nil
		}
		m.summary = summaryLine(m.store, id)
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			levelLabel(r),
			fmt.Sprint(r.Lines),
			core.FormatTicks(r.Frames, m.config.TickRate),
			resultLabel(r),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func levelLabel(r storage.GameRecord) string {
	if r.Extreme {
		return "EX"
	}
	return fmt.Sprint(r.Level)
}

func resultLabel(r storage.GameRecord) string {
	if r.Cleared {
		return "clear"
	}
	return "over"
}

// summaryLine aggregates every record of a mode into one line.
func summaryLine(store *storage.Store, gameID string) string {
	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Games %d  Cleared %d  Avg %.0f  Best lines %d",
		stats.GamesCount, stats.Cleared, stats.AvgScore, stats.MaxLines)

	totals, err := store.RecordTotals(gameID)
	if err != nil {
		return line
	}
	return line + fmt.Sprintf("  Tetris %d  T-Spin %d  Perfect %d",
		totals["tetrises"], totals["all_tspins"], totals["perfect_clears"])
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.details && !m.wide() {
				m.details = false
				return m, nil
			}
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.recent = !m.recent
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Details):
			m.details = !m.details
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = ((m.mode+delta)%n + n) % n
		m.load()
	}
}

// selectedRecord is the record under the table cursor.
func (m ScoreboardModel) selectedRecord() (storage.GameRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return storage.GameRecord{}, false
	}
	return m.records[i], true
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	width := m.config.ScreenW

	heading := "HIGH SCORES"
	if m.recent {
		heading = "RECENT GAMES"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(scoreTitleStyle.Render(heading), width))
	b.WriteString("\n\n")
	b.WriteString(center(m.renderTabs(), width))
	b.WriteString("\n\n")

	var body string
	switch {
	case len(m.records) == 0:
		body = boardBox.Render(dimStyle.Italic(true).Padding(1, 4).Render(
			"No games recorded yet.\nFinish a game to set a high score!"))
	case m.details && m.wide():
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			boardBox.Render(m.table.View()), " ", boardBox.Render(m.renderDetails()))
	case m.details:
		body = boardBox.Render(m.renderDetails())
	default:
		body = boardBox.Render(m.table.View())
	}
	b.WriteString(center(body, width))
	b.WriteString("\n")

	if m.summary != "" {
		b.WriteString("\n")
		b.WriteString(center(dimStyle.Render(m.summary), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(m.help.View(m.keys), width))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = activeTabStyle.Render(mode.Title)
		} else {
			tabs[i] = tabStyle.Render(mode.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.config.ScreenW-4 && len(m.modes) > 0 {
		return activeTabStyle.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

// renderDetails lists every counter of the selected record.
func (m ScoreboardModel) renderDetails() string {
	r, ok := m.selectedRecord()
	if !ok {
		return dimStyle.Render("no record selected")
	}

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-16s%*s\n", label, detailWidth-16, value)
	}
	b.WriteString(scoreTitleStyle.Render("Game " + r.ID[:min(8, len(r.ID))]))
	b.WriteString("\n")
	row("score", fmt.Sprint(r.Score))
	row("level", levelLabel(r))
	row("lines", fmt.Sprint(r.Lines))
	row("time", core.FormatTicks(r.Frames, m.config.TickRate))
	row("played", r.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString(dimStyle.Render(strings.Repeat("-", detailWidth)))
	b.WriteString("\n")
	for _, k := range slices.Sorted(maps.Keys(r.Stats)) {
		row(strings.ReplaceAll(k, "_", " "), fmt.Sprint(r.Stats[k]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// SelectedGame returns the ID of the mode being shown.
func (m ScoreboardModel) SelectedGame() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen and reports whether the user went
// back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
