package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// stubGame ends after a fixed number of ticks and records its input.
type stubGame struct {
	endAfter int
	steps    int
	resets   int
	over     bool
	last     core.InputFrame
	width    int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub Mode" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
	g.width = cfg.ScreenW
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	if !g.over {
		g.steps++
		g.over = g.steps >= g.endAfter
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "STUB") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.over}
}

func (g *stubGame) Summary() core.Summary {
	return core.Summary{GameID: g.ID(), Score: g.steps * 10, Lines: g.steps, Stats: map[string]int{"ticks": g.steps}}
}

func (g *stubGame) Resize(width, _ int) { g.width = width }

func (g *stubGame) LatchTicks() int { return 2 }

func init() {
	registry.Register(registry.Mode{
		ID:    "stub",
		Title: "Stub Mode",
		Order: 100,
		New:   func() registry.Game { return &stubGame{endAfter: 5} },
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, next)
	return next, cmd
}

// tick builds the next tick of the chain the model is listening to.
func tick(m tea.Model) tea.Msg {
	var gen uint64
	switch mm := m.(type) {
	case Model:
		gen = mm.tickGen
	case SessionModel:
		gen = mm.game.tickGen
	}
	return TickMsg{At: time.Now(), Gen: gen}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('l'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop, false},
		{runeKey('x'), core.ActionRotateRight, false},
		{runeKey('z'), core.ActionRotateLeft, false},
		{runeKey('c'), core.ActionHold, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('?'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(runeKey('l')))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestKeyLatchHoldsGameActions(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(core.ActionLeft)
	l.Press(core.ActionPause)

	f := l.Frame()
	assert.True(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionPause))

	for range 2 {
		f = l.Frame()
		assert.True(t, f.Has(core.ActionLeft))
		assert.False(t, f.Has(core.ActionPause), "platform actions last one tick")
	}
	assert.True(t, l.Frame().Empty())
}

func TestKeyLatchRepressExtends(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(core.ActionSoftDrop)
	l.Frame()
	l.Press(core.ActionSoftDrop)
	assert.True(t, l.Frame().Has(core.ActionSoftDrop))
	assert.True(t, l.Frame().Has(core.ActionSoftDrop))
	assert.False(t, l.Frame().Has(core.ActionSoftDrop))

	l.Press(core.ActionHold)
	l.Release()
	assert.True(t, l.Frame().Empty())
}

func TestModelSavesFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 3}
	var m tea.Model = NewModel(game, store, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, tick(m))
	assert.True(t, game.last.Has(core.ActionLeft))

	for range 10 {
		m, _ = update(t, m, tick(m))
	}

	res := m.(Model).LastResult()
	require.NotNil(t, res)
	assert.Equal(t, 30, res.Score)
	require.NoError(t, res.SaveErr)
	require.NotEmpty(t, res.RecordID)

	rec, err := store.RecordByID(res.RecordID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, map[string]int{"ticks": 3}, rec.Stats)

	records, err := store.RecentRecords("stub", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1, "a finished game is saved once")
}

func TestModelLatchFromGame(t *testing.T) {
	game := &stubGame{endAfter: 100}
	var m tea.Model = NewModel(game, nil, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, runeKey('x'))
	for range 2 {
		m, _ = update(t, m, tick(m))
		assert.True(t, game.last.Has(core.ActionRotateRight))
	}
	update(t, m, tick(m))
	assert.False(t, game.last.Has(core.ActionRotateRight))
}

func TestModelRestartAndBack(t *testing.T) {
	game := &stubGame{endAfter: 1}
	var m tea.Model = NewModel(game, nil, testConfig(), nil)
	m.Init()
	m, _ = update(t, m, tick(m))
	require.True(t, game.over)

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, tick(m))
	assert.Equal(t, 2, game.resets)
	assert.False(t, game.over)

	m, _ = update(t, m, tick(m))
	require.True(t, game.over)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.(Model).BackToMenu())
	assert.True(t, isQuit(cmd), "standalone model quits on back")
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{endAfter: 100}
	var m tea.Model = NewModel(game, nil, testConfig(), nil)
	m.Init()

	stale := TickMsg{At: time.Now(), Gen: m.(Model).tickGen - 1}
	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd, "a stale tick does not reschedule")
	assert.Equal(t, 0, game.steps)

	_, cmd = update(t, m, tick(m))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, game.steps)
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "██", core.ColorMinoT)
	s.DrawTextColor(0, 1, "GO!", core.ColorSuccess)

	// tests run without a terminal, so lipgloss drops the escapes
	assert.Equal(t, s.String(), RenderScreen(s))
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAfter: 100}
	var m tea.Model = NewModel(game, nil, testConfig(), nil)
	m.Init()
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 120, game.width)
}

func TestTetraOptions(t *testing.T) {
	var m tea.Model = NewTetraOptionsModel("Tetra", 15, 80, 24)

	// cursor starts on "Start game"; move up to the difficulty row
	for range optionStart {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	om := m.(TetraOptionsModel)
	assert.Equal(t, 5, om.level, "normal preset starts at level 5")
	assert.False(t, om.extreme)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	om = m.(TetraOptionsModel)
	assert.True(t, om.extreme, "wraps to the extreme preset")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for range 20 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 15, m.(TetraOptionsModel).level, "level is clamped")
	assert.Contains(t, m.View(), "custom")

	assert.Nil(t, m.(TetraOptionsModel).Selected())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.(TetraOptionsModel).Selected()
	require.NotNil(t, sel)
	assert.True(t, isQuit(cmd))

	rt := sel.Apply(testConfig())
	assert.Equal(t, 15, rt.StartLevel)
	assert.True(t, rt.Extreme)
}

func TestSessionModelFlow(t *testing.T) {
	store := openStore(t)
	var m tea.Model = NewSessionModel(store, testConfig(), 15, nil)
	m.Init()

	// scoreboard and back
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, stateScoreboard, m.(SessionModel).state)
	assert.False(t, isQuit(cmd), "sub-model quits are not propagated")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMenu, m.(SessionModel).state)

	// pick the stub mode, then start from the options screen
	for m.(SessionModel).menu.items[m.(SessionModel).menu.cursor].GameID != "stub" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateOptions, m.(SessionModel).state)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateGame, m.(SessionModel).state)
	assert.Contains(t, m.View(), "STUB")

	for range 10 {
		m, _ = update(t, m, tick(m))
	}
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMenu, m.(SessionModel).state)
	assert.False(t, isQuit(cmd))

	high, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Equal(t, 50, high)

	_, cmd = update(t, m, runeKey('q'))
	assert.True(t, isQuit(cmd))
}

func scoreboardOnStub(t *testing.T, m ScoreboardModel) ScoreboardModel {
	t.Helper()
	for i := 0; m.SelectedGame() != "stub" && i < len(m.modes); i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	require.Equal(t, "stub", m.SelectedGame())
	return m
}

func TestScoreboardSortAndDetails(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{300, 900, 100} {
		_, err := store.SaveGame(core.Summary{
			GameID: "stub",
			Score:  score,
			Level:  3,
			Lines:  score / 10,
			Frames: 3600,
			Stats:  map[string]int{"tetrises": 1, "max_ren": 2},
		})
		require.NoError(t, err)
	}

	cfg := testConfig()
	cfg.ScreenW = 120
	m := scoreboardOnStub(t, NewScoreboardModel(store, cfg))
	require.Len(t, m.records, 3)
	assert.Equal(t, 900, m.records[0].Score, "best first")
	assert.Contains(t, m.summary, "Games 3")

	next, _ := m.Update(runeKey('s'))
	m = next.(ScoreboardModel)
	assert.True(t, m.recent)
	assert.Equal(t, 100, m.records[0].Score, "latest first")
	assert.Contains(t, m.View(), "RECENT GAMES")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ScoreboardModel)
	view := m.View()
	assert.Contains(t, view, "max ren")
	assert.Contains(t, view, "1:00")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack(), "wide layout leaves directly")
	assert.True(t, isQuit(cmd))
}

func TestScoreboardNarrowDetailsBack(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveGame(core.Summary{GameID: "stub", Score: 10})
	require.NoError(t, err)

	m := scoreboardOnStub(t, NewScoreboardModel(store, testConfig()))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.False(t, m.details, "esc closes the detail pane first")
	assert.False(t, m.IsGoingBack())
	assert.Nil(t, cmd)
}

func TestMenuShowsModeHistory(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveGame(core.Summary{GameID: "stub", Score: 420, Lines: 12, Cleared: true})
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig())
	for m.items[m.cursor].GameID != "stub" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	item := m.items[m.cursor]
	assert.Equal(t, 420, item.Best())
	view := m.View()
	assert.Contains(t, view, "best     420")
	assert.Contains(t, view, "played 1  cleared 1  best lines 12")
}
