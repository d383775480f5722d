package tetra

import (
	"strconv"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// EffectKind tags a HUD effect.
type EffectKind int

const (
	EffectTSpin EffectKind = iota
	EffectTetris
	EffectBackToBack
	EffectPerfectClear
	EffectRen
	EffectHardDrop
)

// untilBroken marks an effect that stays until its chain ends.
const untilBroken = -1

// Effect is a short-lived notice shown next to the board.
type Effect struct {
	Kind      EffectKind
	Remaining int       // ticks left, or untilBroken
	Value     int       // T-Spin kind, back-to-back count or REN count
	Trail     core.Rect // hard-drop trail in board cells
}

// Label returns the HUD text for the effect.
func (e Effect) Label() string {
	switch e.Kind {
	case EffectTSpin:
		return engine.TSpin(e.Value).String()
	case EffectTetris:
		return "TETRIS"
	case EffectBackToBack:
		return "BACK-TO-BACK"
	case EffectPerfectClear:
		return "PERFECT CLEAR"
	case EffectRen:
		return strconv.Itoa(e.Value) + " REN"
	default:
		return ""
	}
}

type effects struct {
	list []Effect
}

// add replaces any running effect of the same kind.
func (e *effects) add(ef Effect) {
	e.remove(ef.Kind)
	e.list = append(e.list, ef)
}

func (e *effects) remove(kind EffectKind) {
	out := e.list[:0]
	for _, ef := range e.list {
		if ef.Kind != kind {
			out = append(out, ef)
		}
	}
	e.list = out
}

func (e *effects) step() {
	out := e.list[:0]
	for _, ef := range e.list {
		if ef.Remaining > 0 {
			ef.Remaining--
			if ef.Remaining == 0 {
				continue
			}
		}
		out = append(out, ef)
	}
	e.list = out
}

func (e *effects) lineClear(info engine.LineClearInfo, t config.TetraTiming) {
	if info.TSpin != engine.TSpinNone {
		e.add(Effect{Kind: EffectTSpin, Remaining: t.EffectTicks, Value: int(info.TSpin)})
	} else if info.Lines == 4 {
		e.add(Effect{Kind: EffectTetris, Remaining: t.EffectTicks})
	}
	if info.BackToBack > 0 {
		e.add(Effect{Kind: EffectBackToBack, Remaining: t.EffectTicks, Value: info.BackToBack})
	}
	if info.PerfectClear {
		e.add(Effect{Kind: EffectPerfectClear, Remaining: t.PerfectClearTicks})
	}
	if info.Ren > 0 {
		e.add(Effect{Kind: EffectRen, Remaining: untilBroken, Value: info.Ren})
	}
}

func (e *effects) plainLock(tspin *engine.TSpinEvent, t config.TetraTiming) {
	e.remove(EffectRen)
	if tspin == nil {
		return
	}
	e.add(Effect{Kind: EffectTSpin, Remaining: t.EffectTicks, Value: int(tspin.TSpin)})
	if tspin.BackToBack > 0 {
		e.add(Effect{Kind: EffectBackToBack, Remaining: t.EffectTicks, Value: tspin.BackToBack})
	}
}

// lineClearAnime steps through the flash phases over the cleared rows.
type lineClearAnime struct {
	active   bool
	rows     []int
	phase    int
	timer    int
	interval int
	phases   int
}

func (a *lineClearAnime) start(info engine.LineClearInfo, interval, phases int) {
	*a = lineClearAnime{
		active:   phases > 0,
		rows:     info.Rows,
		interval: max(interval, 1),
		phases:   phases,
	}
}

func (a *lineClearAnime) step() {
	if !a.active {
		return
	}
	a.timer++
	if a.timer < a.interval {
		return
	}
	a.timer = 0
	a.phase++
	if a.phase >= a.phases {
		a.active = false
	}
}
