package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// defaultLatchTicks is used for games that do not configure a key latch.
const defaultLatchTicks = 6

// latchConfigurer is implemented by games that choose how long a key press
// counts as held.
type latchConfigurer interface {
	LatchTicks() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger // may be nil
	config    core.RuntimeConfig
	keys      *KeyMapper
	latch     *KeyLatch
	gameState core.GameState
	result    *Result // last finished game
	tickGen   uint64

	quitting   bool
	backToMenu bool
	embedded   bool // hosted by a SessionModel; Back returns to its menu
	saved      bool // whether the finished game has been persisted
}

// Result describes the last finished game of a Model.
type Result struct {
	GameID   string
	Score    int
	RecordID string // empty when only the score (or nothing) was stored
	SaveErr  error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		latch:   NewKeyLatch(defaultLatchTicks),
		tickGen: nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if lc, ok := m.game.(latchConfigurer); ok {
		m.latch.ticks = max(lc.LatchTicks(), 1)
	}
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
	default:
		m.latch.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	in := m.latch.Frame()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.latch.Release()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.save()
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// save persists the finished game once. Games with statistics get a full
// record; others only a non-zero score.
func (m *Model) save() {
	m.result = &Result{GameID: m.game.ID(), Score: m.gameState.Score}
	if m.store == nil {
		return
	}

	if s, ok := m.game.(registry.Summarizer); ok {
		id, err := m.store.SaveGame(s.Summary())
		m.result.RecordID, m.result.SaveErr = id, err
	} else if m.gameState.Score > 0 {
		_, m.result.SaveErr = m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	if m.logger == nil {
		return
	}
	if m.result.SaveErr != nil {
		m.logger.Error("could not save game", "game", m.game.ID(), "error", m.result.SaveErr)
		return
	}
	m.logger.Info("game saved", "game", m.game.ID(), "score", m.result.Score, "record", m.result.RecordID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetra", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// helpLine renders the key bindings as plain text for the bottom row.
func (m Model) helpLine() string {
	bindings := m.keys.Keys().ShortHelp()
	if m.gameState.GameOver {
		k := m.keys.Keys()
		bindings = append(bindings[:0:0], k.Restart, k.Back, k.Quit)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused || m.gameState.GameOver {
		m.screen.DrawTextCenteredColor(m.screen.Height()-1, m.helpLine(), core.ColorFrame)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastResult returns the outcome of the last finished game, or nil if no
// game has finished yet.
func (m Model) LastResult() *Result {
	return m.result
}

// Run starts the Bubble Tea program with the given model and returns the
// last finished game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (*Result, error) {
	model := NewModel(game, store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.LastResult(), nil
	}
	return nil, nil
}
