package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
)

// TetraSelection holds the options chosen before a game.
type TetraSelection struct {
	StartLevel int
	Extreme    bool
}

// Apply copies the selection into a runtime config.
func (s TetraSelection) Apply(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.StartLevel = s.StartLevel
	cfg.Extreme = s.Extreme
	return cfg
}

const (
	optionPreset = iota
	optionLevel
	optionExtreme
	optionStart
	optionCount
)

// TetraOptionsModel lets users pick a difficulty preset, start level and
// extreme mode before playing.
type TetraOptionsModel struct {
	title     string
	cursor    int
	preset    int // index into config.Presets, -1 for custom
	level     int
	maxLevel  int
	extreme   bool
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewTetraOptionsModel creates the options screen for the given mode title.
func NewTetraOptionsModel(title string, maxLevel, width, height int) TetraOptionsModel {
	if maxLevel < 1 {
		maxLevel = 1
	}
	return TetraOptionsModel{
		title:     title,
		cursor:    optionStart,
		preset:    0,
		level:     1,
		maxLevel:  maxLevel,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TetraOptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TetraOptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m TetraOptionsModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < optionCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.change(-1)
	case MenuActionRight:
		m.change(1)
	case MenuActionSelect:
		if m.cursor == optionExtreme {
			m.change(1)
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// change moves the value under the cursor by delta.
func (m *TetraOptionsModel) change(delta int) {
	switch m.cursor {
	case optionPreset:
		n := len(config.Presets)
		m.preset = ((max(m.preset, 0)+delta)%n + n) % n
		m.applyPreset(config.Presets[m.preset])
	case optionLevel:
		m.level = min(max(m.level+delta, 1), m.maxLevel)
		m.preset = -1
	case optionExtreme:
		m.extreme = !m.extreme
		m.preset = -1
	}
}

func (m *TetraOptionsModel) applyPreset(p config.DifficultyPreset) {
	m.extreme = p == config.DifficultyExtreme
	m.level = min(config.StartLevelForPreset(p), m.maxLevel)
}

// View renders the options screen.
func (m TetraOptionsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")

	preset := "custom"
	if m.preset >= 0 {
		preset = string(config.Presets[m.preset])
	}
	extreme := "off"
	if m.extreme {
		extreme = "on"
	}

	rows := []string{
		fmt.Sprintf("Difficulty   < %-7s >", preset),
		fmt.Sprintf("Start level  < %2d >     ", m.level),
		fmt.Sprintf("Extreme      < %-3s >    ", extreme),
		"Start game              ",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TetraOptionsModel) Selected() *TetraSelection {
	if m.choosing {
		return nil
	}
	return &TetraSelection{StartLevel: m.level, Extreme: m.extreme}
}

// IsQuitting returns true if user wants to quit.
func (m TetraOptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TetraOptionsModel) WantsBack() bool {
	return m.back
}

// RunTetraOptions runs the options screen. A nil selection means the user
// went back or quit.
func RunTetraOptions(title string, maxLevel int, cfg core.RuntimeConfig) (*TetraSelection, error) {
	model := NewTetraOptionsModel(title, maxLevel, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TetraOptionsModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
