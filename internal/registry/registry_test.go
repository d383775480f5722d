package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubMode(id string, order int) Mode {
	return Mode{
		ID:    id,
		Title: "Stub " + id,
		Order: order,
		New:   func() Game { return &stubGame{id: id} },
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register(stubMode("stub-b", 100))
	Register(stubMode("stub-a", 100))
	Register(stubMode("stub-z", 99))

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("stub-missing"))

	g, err := Create("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "stub-a", g.ID())

	_, err = Create("stub-missing")
	assert.ErrorIs(t, err, ErrUnknownMode)

	m, ok := Lookup("stub-b")
	require.True(t, ok)
	assert.Equal(t, "Stub stub-b", m.Title)

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b", "stub-z"})
	assert.Less(t, indexOf(ids, "stub-z"), indexOf(ids, "stub-a"), "order wins over ID")
	assert.Less(t, indexOf(ids, "stub-a"), indexOf(ids, "stub-b"), "ties sort by ID")
}

func TestRegisterRejectsBadModes(t *testing.T) {
	Register(stubMode("stub-dup", 0))
	assert.Panics(t, func() { Register(stubMode("stub-dup", 0)) })
	assert.Panics(t, func() { Register(Mode{ID: "stub-nofactory"}) })
	assert.Panics(t, func() { Register(Mode{New: func() Game { return nil }}) })
}

func TestRegisterDefaultsTitle(t *testing.T) {
	Register(Mode{ID: "stub-untitled", New: func() Game { return &stubGame{id: "stub-untitled"} }})
	m, ok := Lookup("stub-untitled")
	require.True(t, ok)
	assert.Equal(t, "stub-untitled", m.Title)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
