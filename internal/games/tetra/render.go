package tetra

import (
	"fmt"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// Cell glyphs. Every board cell is two characters wide.
const (
	glyphBlock = "██"
	glyphGhost = "░░"
	glyphEmpty = " ."
	glyphFlash = "▒▒"
	glyphTrail = "¦¦"
)

// ticks each end-screen statistics page stays up
const statPageTicks = 180

const (
	panelW    = 10 // hold and next boxes
	infoW     = 16
	panelGap  = 1
	nextSlotH = 3
)

// blockColor maps a cell to its display color.
func blockColor(b engine.BlockType) core.Color {
	switch b {
	case engine.BlockI:
		return core.ColorMinoI
	case engine.BlockO:
		return core.ColorMinoO
	case engine.BlockS:
		return core.ColorMinoS
	case engine.BlockZ:
		return core.ColorMinoZ
	case engine.BlockJ:
		return core.ColorMinoJ
	case engine.BlockL:
		return core.ColorMinoL
	case engine.BlockT:
		return core.ColorMinoT
	default:
		return core.ColorFrame
	}
}

// layout is where each panel lands on screen.
type layout struct {
	hold  core.Rect
	board core.Rect
	next  core.Rect
	info  core.Rect
}

func (g *Game) layout(dst *core.Screen) layout {
	opts := g.session.Engine().Options()
	boardW := opts.Width*2 + 2
	boardH := opts.Visible + 2
	total := panelW + panelGap + boardW + panelGap + panelW + panelGap + infoW

	area := core.Centered(dst.Width(), dst.Height(), total, boardH)

	var l layout
	l.hold = core.NewRect(area.X, area.Y, panelW, 5)
	l.board = l.hold.Beside(panelGap, boardW, boardH)
	l.next = l.board.Beside(panelGap, panelW, min(2+nextSlotH*opts.NextCount, boardH))
	l.info = l.next.Beside(panelGap, infoW, boardH)
	return l
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.session == nil {
		dst.DrawTextCenteredColor(dst.Height()/2-1, "Cannot start game", core.ColorAlert)
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}

	l := g.layout(dst)
	g.renderHold(dst, l.hold)
	g.renderBoard(dst, l.board)
	g.renderNext(dst, l.next)
	g.renderInfo(dst, l.info)
	g.renderOverlay(dst, l.board)
}

func (g *Game) renderHold(dst *core.Screen, r core.Rect) {
	dst.DrawPanel(r, "HOLD", core.ColorFrame)
	info := g.session.Info()
	if !info.HasHold || g.session.ReadyPhase() != ReadyDone {
		return
	}
	color := blockColor(info.Hold.Block())
	if info.HoldUsed {
		color = core.ColorFrame
	}
	drawMini(dst, r.X+1, r.Y+1, info.Hold, color)
}

func (g *Game) renderNext(dst *core.Screen, r core.Rect) {
	dst.DrawPanel(r, "NEXT", core.ColorFrame)
	if g.session.ReadyPhase() != ReadyDone {
		return
	}
	for i, m := range g.session.Info().Next {
		y := r.Y + 1 + i*nextSlotH
		if y+2 > r.Bottom()-1 {
			break
		}
		drawMini(dst, r.X+1, y, m, blockColor(m.Block()))
	}
}

// drawMini draws a mino in spawn orientation with its top-left cell at (x, y).
func drawMini(dst *core.Screen, x, y int, m engine.MinoType, color core.Color) {
	shape := engine.Shape(m, 0)
	for _, p := range shape.Points {
		px := x + (p.X-shape.Min.X)*2
		py := y + p.Y - shape.Min.Y
		dst.DrawTextColor(px, py, glyphBlock, color)
	}
}

// boardCell returns the screen position of a board cell inside the box r.
func boardCell(r core.Rect, top int, p engine.Point) (int, int) {
	return r.X + 1 + (p.X-1)*2, r.Y + 1 + p.Y - top
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	s := g.session
	eng := s.Engine()
	opts := eng.Options()
	top := eng.VisibleTop()

	dst.DrawBoxColor(r, core.ColorFrame)

	board := eng.Board()
	var flashRows map[int]bool
	clearing := s.Wait() == WaitByLineClear
	if clearing {
		if info, ok := eng.LastLineClear(); ok {
			board = info.AfterClear
			if s.anime.active {
				flashRows = make(map[int]bool, len(info.Rows))
				for _, y := range info.Rows {
					flashRows[y] = true
				}
				if s.anime.phase == 0 {
					board = info.Before
				}
			}
		}
	}

	for y := top; y < top+opts.Visible; y++ {
		for x := 1; x <= opts.Width; x++ {
			p := engine.Point{X: x, Y: y}
			sx, sy := boardCell(r, top, p)
			switch {
			case flashRows[y] && s.anime.phase == 0:
				dst.DrawTextColor(sx, sy, glyphBlock, core.ColorFlash)
			case flashRows[y]:
				dst.DrawTextColor(sx, sy, glyphFlash, core.ColorFlash)
			case board.At(p) != engine.BlockNone:
				dst.DrawTextColor(sx, sy, glyphBlock, blockColor(board.At(p)))
			default:
				dst.DrawTextColor(sx, sy, glyphEmpty, core.ColorFrame)
			}
		}
	}

	if clearing || s.ReadyPhase() != ReadyDone || s.Outcome() != OutcomePlaying {
		return
	}

	for _, ef := range s.effects.list {
		if ef.Kind != EffectHardDrop {
			continue
		}
		for y := ef.Trail.Y; y < ef.Trail.Bottom(); y++ {
			for x := ef.Trail.X; x < ef.Trail.Right(); x++ {
				p := engine.Point{X: x, Y: y}
				if y < top || board.At(p) != engine.BlockNone {
					continue
				}
				sx, sy := boardCell(r, top, p)
				dst.DrawTextColor(sx, sy, glyphTrail, core.ColorFrame)
			}
		}
	}

	if s.Wait() != WaitNone {
		return
	}
	info := eng.Info()
	shape := engine.Shape(info.Current, info.Rotation)
	color := blockColor(info.Current.Block())
	for _, pos := range []engine.Point{info.Ghost, info.Position} {
		glyph := glyphBlock
		if pos == info.Ghost && pos != info.Position {
			glyph = glyphGhost
		}
		for _, p := range shape.Points {
			c := pos.Add(p)
			if c.Y < top {
				continue
			}
			sx, sy := boardCell(r, top, c)
			dst.DrawTextColor(sx, sy, glyph, color)
		}
	}
}

func (g *Game) renderInfo(dst *core.Screen, r core.Rect) {
	s := g.session
	y := r.Y
	line := func(label string, value any) {
		dst.DrawTextColor(r.X, y, label, core.ColorFrame)
		dst.DrawText(r.X, y+1, fmt.Sprint(value))
		y += 3
	}

	line("SCORE", s.Score())
	if s.Extreme() {
		line("LEVEL", "EXTREME")
	} else {
		line("LEVEL", s.Level())
	}
	line("LINES", fmt.Sprintf("%d/%d", s.Lines(), s.Target()))
	line("TIME", core.FormatTicks(s.Frame(), g.runtime.TickRate))

	for _, ef := range s.effects.list {
		label := ef.Label()
		if label == "" {
			continue
		}
		if ef.Kind == EffectBackToBack {
			label = fmt.Sprintf("%s x%d", label, ef.Value)
		}
		if y >= r.Bottom() {
			break
		}
		dst.DrawTextColor(r.X, y, label, effectColor(ef.Kind))
		y++
	}
}

func effectColor(k EffectKind) core.Color {
	switch k {
	case EffectTSpin:
		return core.ColorSpin
	case EffectTetris:
		return core.ColorMinoI
	case EffectBackToBack:
		return core.ColorNotice
	case EffectPerfectClear:
		return core.ColorSuccess
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderOverlay(dst *core.Screen, r core.Rect) {
	s := g.session
	inner := r.Inset(1)
	center := func(y int, text string, c core.Color) {
		x := inner.X + (inner.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}
	mid := inner.Y + inner.H/2

	switch {
	case s.Outcome() != OutcomePlaying:
		dst.DrawRect(inner, ' ')
		title, color := "GAME OVER", core.ColorAlert
		if s.Outcome() == OutcomeCleared {
			title, color = "CLEAR!", core.ColorSuccess
		}
		center(inner.Y+1, title, color)
		pages := StatPages(s.Statistics())
		page := pages[(g.endTicks/statPageTicks)%len(pages)]
		center(inner.Y+3, page.Title, core.ColorFrame)
		y := inner.Y + 5
		for _, l := range page.Lines {
			if y >= inner.Bottom()-2 {
				break
			}
			dst.DrawText(inner.X+1, y, l.Label)
			v := fmt.Sprint(l.Value)
			dst.DrawText(inner.Right()-1-len(v), y, v)
			y++
		}
		center(inner.Bottom()-1, "R restart  Q quit", core.ColorFrame)
	case g.paused:
		center(mid, "PAUSED", core.ColorNotice)
	case s.ReadyPhase() == ReadyShow:
		center(mid, "READY", core.ColorNotice)
	case s.ReadyPhase() == ReadyGo:
		center(mid, "GO!", core.ColorSuccess)
	}
}
