package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Fixture is a prepared board with the mino sequence that solves it.
// Rows are bottom-aligned above the floor, one character per interior column:
// 'O' is a block, 'N' an empty cell.
type Fixture struct {
	Name   string
	Rows   []string
	Script []MinoType
}

func repeatRows(row string, n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

func repeatMinos(seq []MinoType, n int) []MinoType {
	out := make([]MinoType, 0, len(seq)*n)
	for range n {
		out = append(out, seq...)
	}
	return out
}

var fixtures = map[string]Fixture{
	"doublequad": {
		Name:   "doublequad",
		Rows:   repeatRows("OOOOOOOOON", 8),
		Script: []MinoType{MinoI, MinoI},
	},
	"quadtst": {
		Name: "quadtst",
		Rows: append(repeatRows("OOOOOONOOO", 4),
			"OOOOOOONNO",
			"OOOOOOONNO",
			"OOOOOONNNO",
			"OOOOOONOOO",
			"OOOOOONNOO",
			"OOOOOONOOO",
		),
		Script: []MinoType{MinoI, MinoT, MinoT},
	},
	"dtpc": {
		Name: "dtpc",
		Rows: []string{
			"NNNOOOOOOO",
			"NNOOOOOOOO",
			"NNOOOOOOOO",
			"NNOOOOOOOO",
			"NNNOOOOOOO",
			"OONOOOOOOO",
			"ONNOOOOOOO",
			"ONNNOOOOOO",
			"OONOOOOOOO",
			"OONOOOOOOO",
		},
		Script: repeatMinos([]MinoType{MinoT}, 5),
	},
	"ren": {
		Name:   "ren",
		Rows:   append(repeatRows("NNNNOOOOOO", 19), "NOOOOOOOOO"),
		Script: repeatMinos([]MinoType{MinoL, MinoJ}, 10),
	},
}

// FixtureNames lists the available fixtures in sorted order.
func FixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupFixture returns the fixture with the given case-insensitive name.
func LookupFixture(name string) (Fixture, error) {
	f, ok := fixtures[strings.ToLower(name)]
	if !ok {
		return Fixture{}, fmt.Errorf("tetra: unknown fixture %q (available: %s)", name, strings.Join(FixtureNames(), ", "))
	}
	return f, nil
}

// Source returns a mino source that plays the fixture script before fallback.
func (f Fixture) Source(fallback MinoSource) *ScriptedSource {
	return NewScriptedSource(f.Script, fallback)
}
