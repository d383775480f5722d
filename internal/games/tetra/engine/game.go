package engine

import "fmt"

// Options sizes the playfield. Widths and heights exclude the wall border.
type Options struct {
	Width     int // interior columns
	Height    int // interior rows including the hidden rows above the field
	Visible   int // rows shown to the player, counted up from the floor
	SpawnY    int // board row the spawn box is anchored at; 0 means the first visible row
	NextCount int // length of the next queue
}

// DefaultOptions returns a 10x20 visible field with 20 hidden rows above it
// and six pieces of preview.
func DefaultOptions() Options {
	return Options{Width: 10, Height: 40, Visible: 20, NextCount: 6}
}

// Validate reports whether the options describe a playable field.
func (o Options) Validate() error {
	switch {
	case o.Width < maxMinoSize:
		return fmt.Errorf("tetra: width %d narrower than %d", o.Width, maxMinoSize)
	case o.Visible < maxMinoSize || o.Visible > o.Height:
		return fmt.Errorf("tetra: visible rows %d outside [%d, %d]", o.Visible, maxMinoSize, o.Height)
	case o.NextCount < 1:
		return fmt.Errorf("tetra: next queue length %d must be positive", o.NextCount)
	case o.SpawnY < 0 || o.SpawnY > o.Height:
		return fmt.Errorf("tetra: spawn row %d outside board", o.SpawnY)
	}
	return nil
}

// BoardInfo is a read-only snapshot of the active piece and the queues.
// Board points at the live grid and must not be retained across operations.
type BoardInfo struct {
	Board               *Board
	Current             MinoType
	Rotation            Rotation
	Position            Point
	Ghost               Point
	Hold                MinoType
	HasHold             bool
	HoldUsed            bool
	Next                []MinoType
	Landing             bool
	OnceLanded          bool
	OperationsAfterLand int
	GameOver            bool
}

// LineClearInfo describes one clearing lock. The boards are owned by the
// Game and stay valid until the next lock.
type LineClearInfo struct {
	Lines        int   // rows cleared by this lock
	RenLines     int   // lines cleared by the current REN chain including this lock
	Rows         []int // cleared board rows in ascending order
	TSpin        TSpin
	PerfectClear bool
	Ren          int // clearing locks before this one in the chain
	BackToBack   int // back-to-back count before this lock; 0 if this clear does not continue a chain
	Width        int
	Height       int
	Before       *Board // after the piece was written, before removal
	AfterClear   *Board // cleared rows emptied, nothing moved
	AfterFall    *Board // final board
}

// Game is the board and piece state machine. All methods are synchronous and
// must be called from a single goroutine.
type Game struct {
	opts   Options
	board  *Board
	source MinoSource
	events *Dispatcher

	started  bool
	gameOver bool

	current  MinoType
	rotation Rotation
	pos      Point
	ghost    Point
	hold     MinoType
	hasHold  bool
	holdUsed bool
	next     []MinoType

	landing        bool
	onceLanded     bool
	opsAfterLand   int
	lastOpRotation bool
	lastKick       int

	blockCount int
	stats      Statistics

	lineClear    LineClearInfo
	hasLineClear bool
	before       *Board
	afterClear   *Board
	afterFall    *Board
}

// New creates a game with an empty board. Register listeners on Events and
// then call Start to spawn the first piece.
func New(opts Options, source MinoSource) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	w, h := opts.Width+2, opts.Height+2
	if opts.SpawnY == 0 {
		opts.SpawnY = h - 1 - opts.Visible
	}
	g := &Game{
		opts:       opts,
		board:      NewBoard(w, h),
		source:     source,
		events:     NewDispatcher(),
		next:       make([]MinoType, 0, opts.NextCount),
		before:     NewBoard(w, h),
		afterClear: NewBoard(w, h),
		afterFall:  NewBoard(w, h),
	}
	return g, nil
}

// Start fills the next queue and spawns the first piece. Calling it again is a no-op.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	for len(g.next) < g.opts.NextCount {
		g.next = append(g.next, g.source.Next(g))
	}
	g.consumeNextMino()
	g.initializeNextMino()
	g.dispatchUpdates()
}

// Events returns the dispatcher listeners subscribe to.
func (g *Game) Events() *Dispatcher {
	return g.events
}

// Options returns the options the game was created with, with SpawnY resolved.
func (g *Game) Options() Options {
	return g.opts
}

// Board returns the live grid. It has no exported mutators.
func (g *Game) Board() *Board {
	return g.board
}

// VisibleTop returns the first board row shown to the player.
func (g *Game) VisibleTop() int {
	return g.board.height - 1 - g.opts.Visible
}

// Info returns a snapshot of the active piece and queues.
func (g *Game) Info() BoardInfo {
	return BoardInfo{
		Board:               g.board,
		Current:             g.current,
		Rotation:            g.rotation,
		Position:            g.pos,
		Ghost:               g.ghost,
		Hold:                g.hold,
		HasHold:             g.hasHold,
		HoldUsed:            g.holdUsed,
		Next:                append([]MinoType(nil), g.next...),
		Landing:             g.landing,
		OnceLanded:          g.onceLanded,
		OperationsAfterLand: g.opsAfterLand,
		GameOver:            g.gameOver,
	}
}

// Statistics returns a copy of the counters.
func (g *Game) Statistics() Statistics {
	return g.stats
}

// LastLineClear returns the most recent line clear, if any lock has cleared lines.
func (g *Game) LastLineClear() (LineClearInfo, bool) {
	return g.lineClear, g.hasLineClear
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool { return g.gameOver }

// Landing reports whether the piece rests on the stack.
func (g *Game) Landing() bool { return g.landing }

// OnceLanded reports whether the piece has rested at least once since spawning.
func (g *Game) OnceLanded() bool { return g.onceLanded }

// OperationsAfterLand counts lateral moves and rotations made while landed.
func (g *Game) OperationsAfterLand() int { return g.opsAfterLand }

// Position returns the anchor of the active piece.
func (g *Game) Position() Point { return g.pos }

// Ghost returns where the active piece would land.
func (g *Game) Ghost() Point { return g.ghost }

// Current returns the active mino and its orientation.
func (g *Game) Current() (MinoType, Rotation) { return g.current, g.rotation }

// BlockCount returns the number of locked blocks on the board.
func (g *Game) BlockCount() int { return g.blockCount }

// Observer is the read-only surface of a Game used by renderers and tests.
type Observer interface {
	View
	Options() Options
	VisibleTop() int
	LastLineClear() (LineClearInfo, bool)
	Landing() bool
	OperationsAfterLand() int
	Current() (MinoType, Rotation)
}

// ReadOnly returns an Observer of g that carries none of its operations.
func (g *Game) ReadOnly() Observer { return observer{g} }

type observer struct{ g *Game }

func (o observer) Board() *Board                        { return o.g.Board() }
func (o observer) Info() BoardInfo                      { return o.g.Info() }
func (o observer) Statistics() Statistics               { return o.g.Statistics() }
func (o observer) IsGameOver() bool                     { return o.g.IsGameOver() }
func (o observer) Options() Options                     { return o.g.Options() }
func (o observer) VisibleTop() int                      { return o.g.VisibleTop() }
func (o observer) LastLineClear() (LineClearInfo, bool) { return o.g.LastLineClear() }
func (o observer) Landing() bool                        { return o.g.Landing() }
func (o observer) OperationsAfterLand() int             { return o.g.OperationsAfterLand() }
func (o observer) Current() (MinoType, Rotation)        { return o.g.Current() }

func (g *Game) active() bool {
	return g.started && !g.gameOver
}

// MoveLeft shifts the piece one column left.
func (g *Game) MoveLeft() bool { return g.active() && g.move(Point{-1, 0}, false) }

// MoveRight shifts the piece one column right.
func (g *Game) MoveRight() bool { return g.active() && g.move(Point{1, 0}, false) }

// MoveDown shifts the piece one row down.
func (g *Game) MoveDown() bool { return g.active() && g.move(Point{0, 1}, false) }

// RotateRight turns the piece clockwise, trying each wall kick in order.
func (g *Game) RotateRight() bool { return g.active() && g.rotate(true) }

// RotateLeft turns the piece counter-clockwise, trying each wall kick in order.
func (g *Game) RotateLeft() bool { return g.active() && g.rotate(false) }

// DropBottom moves the piece to its ghost position and, if hard, locks it.
// A piece already at its ghost position stays put and the call still succeeds.
func (g *Game) DropBottom(hard bool) bool {
	if !g.active() {
		return false
	}
	g.move(g.ghost.Sub(g.pos), true)
	if hard {
		g.Lock()
	}
	return true
}

// Hold swaps the active piece with the hold slot. The first hold stashes the
// piece and takes the next one from the queue. Only one hold per spawn.
func (g *Game) Hold() bool {
	if !g.active() || g.holdUsed {
		return false
	}
	if g.hasHold {
		g.current, g.hold = g.hold, g.current
	} else {
		g.hold = g.current
		g.hasHold = true
		g.consumeNextMino()
	}
	g.initializeNextMino()
	g.holdUsed = true
	g.stats.Holds++
	g.dispatchUpdates()
	return true
}

// GameOver ends the game, settling back-to-back and REN chains.
// Calling it on a finished game panics.
func (g *Game) GameOver() {
	if g.gameOver {
		panic("tetra: GameOver called twice")
	}
	g.gameOver = true
	g.stats.closeBackToBack()
	g.stats.closeRen()
	g.events.Dispatch(GameOverEvent{})
	g.dispatchUpdates()
}

// Lock writes the resting piece into the board, clears filled rows and spawns
// the next piece. It reports false without changing state unless the piece
// has landed and is resting.
func (g *Game) Lock() bool {
	if !g.active() || !g.onceLanded || !g.landing {
		return false
	}
	mobile := !g.board.Collide(g.current, g.pos.Add(Point{0, -1}), g.rotation)

	g.events.Dispatch(LockEvent{})
	shape := Shape(g.current, g.rotation)
	block := g.current.Block()
	for _, p := range shape.Points {
		g.board.set(g.pos.Add(p), block)
	}
	g.blockCount += NumMinoCells

	var rows [maxMinoSize]int
	n := 0
	for k := 0; k < shape.Height; k++ {
		if y := g.pos.Y + shape.Min.Y + k; g.board.RowFilled(y) {
			rows[n] = y
			n++
		}
	}
	g.blockCount -= (g.board.width - 2) * n

	tspin := TSpinNone
	if g.current == MinoT && g.lastOpRotation {
		tspin = detectTSpin(g.board, g.pos, g.rotation, g.lastKick, n, mobile)
	}

	g.stats.countLines(n)
	if tspin != TSpinNone {
		g.stats.TSpins[tspin]++
		g.stats.AllSpins++
		g.events.Dispatch(TSpinEvent{TSpin: tspin, BackToBack: g.stats.BackToBack})
	}

	if n > 0 {
		g.clearLines(rows[:n], tspin)
	} else {
		if tspin != TSpinNone {
			g.stats.BackToBack++
		}
		g.stats.closeRen()
	}

	g.consumeNextMino()
	g.initializeNextMino()
	g.dispatchUpdates()
	return true
}

func (g *Game) clearLines(rows []int, tspin TSpin) {
	n := len(rows)
	backToBack := n == 4 || tspin != TSpinNone

	g.before.copyFrom(g.board)
	g.afterClear.copyFrom(g.board)
	for _, y := range rows {
		for x := 1; x < g.board.width-1; x++ {
			g.afterClear.set(Point{x, y}, BlockNone)
		}
		g.board.clearRow(y)
	}
	g.board.resetTopRows(n)
	g.afterFall.copyFrom(g.board)

	b2b := 0
	if backToBack {
		b2b = g.stats.BackToBack
	}
	pc := g.blockCount == 0
	g.lineClear = LineClearInfo{
		Lines:        n,
		RenLines:     g.stats.RenLines + n,
		Rows:         append([]int(nil), rows...),
		TSpin:        tspin,
		PerfectClear: pc,
		Ren:          g.stats.Ren,
		BackToBack:   b2b,
		Width:        g.board.width,
		Height:       g.board.height,
		Before:       g.before,
		AfterClear:   g.afterClear,
		AfterFall:    g.afterFall,
	}
	g.hasLineClear = true
	g.events.Dispatch(LineClearEvent{Info: g.lineClear})

	g.stats.Ren++
	g.stats.RenLines += n
	if backToBack {
		g.stats.BackToBack++
	} else {
		g.stats.closeBackToBack()
	}
	g.stats.ClearedLines += n
	if pc {
		g.stats.PerfectClears++
	}
}

func (g *Game) move(off Point, hardDrop bool) bool {
	if off == (Point{}) {
		return true
	}
	np := g.pos.Add(off)
	if g.board.Collide(g.current, np, g.rotation) {
		return false
	}
	g.lastOpRotation = false
	g.pos = np
	g.updatePosition()
	if off.X != 0 && g.onceLanded && g.landing {
		g.opsAfterLand++
	}
	if hardDrop {
		g.stats.HardDrops++
	}
	switch {
	case off.X < 0:
		g.stats.MovesLeft -= off.X
	case off.X > 0:
		g.stats.MovesRight += off.X
	}
	g.stats.DropDistance += off.Y
	g.dispatchUpdates()
	return true
}

func (g *Game) rotate(clockwise bool) bool {
	to := g.rotation.Left()
	if clockwise {
		to = g.rotation.Right()
	}
	kicks := Shape(g.current, g.rotation).Kicks(clockwise)
	for i, k := range kicks {
		np := g.pos.Add(k)
		if g.board.Collide(g.current, np, to) {
			continue
		}
		g.rotation = to
		g.pos = np
		g.updatePosition()
		if g.onceLanded && g.landing {
			g.opsAfterLand++
		}
		if clockwise {
			g.stats.RotationsRight++
		} else {
			g.stats.RotationsLeft++
		}
		g.lastOpRotation = true
		g.lastKick = i
		g.dispatchUpdates()
		return true
	}
	return false
}

// ghostOf returns the lowest non-colliding anchor straight below pos.
func (g *Game) ghostOf(pos Point) Point {
	for !g.board.Collide(g.current, pos.Add(Point{0, 1}), g.rotation) {
		pos.Y++
	}
	return pos
}

func (g *Game) updatePosition() {
	g.ghost = g.ghostOf(g.pos)
	wasLanding := g.landing
	g.landing = g.ghost == g.pos
	if g.landing && !wasLanding {
		g.events.Dispatch(LandEvent{First: !g.onceLanded})
		g.onceLanded = true
	}
}

func (g *Game) spawnPosition(m MinoType) Point {
	return Point{(g.board.width - Shape(m, 0).Width) / 2, g.opts.SpawnY}
}

func (g *Game) consumeNextMino() {
	g.current = g.next[0]
	copy(g.next, g.next[1:])
	g.next[len(g.next)-1] = g.source.Next(g)
	g.stats.Minos++
	g.events.Dispatch(NextMinoEvent{Next: append([]MinoType(nil), g.next...)})
}

func (g *Game) initializeNextMino() {
	g.lastOpRotation = false
	g.lastKick = 0
	g.holdUsed = false
	g.landing = false
	g.onceLanded = false
	g.opsAfterLand = 0

	g.rotation = 0
	g.pos = g.spawnPosition(g.current)
	for i := 0; i < 2 && g.board.Collide(g.current, g.pos, g.rotation); i++ {
		g.pos.Y--
	}
	g.updatePosition()
	g.events.Dispatch(NewMinoEvent{Mino: g.current})
	if g.board.Collide(g.current, g.pos, g.rotation) {
		g.GameOver()
	}
}

func (g *Game) dispatchUpdates() {
	if g.events.Len(EventBoardUpdate) > 0 {
		g.events.Dispatch(BoardUpdateEvent{Info: g.Info()})
	}
	if g.events.Len(EventStatisticsUpdate) > 0 {
		g.events.Dispatch(StatisticsUpdateEvent{Stats: g.stats})
	}
}

// LoadFixture fills the board from fixture rows before the game starts.
func (g *Game) LoadFixture(rows []string) error {
	if g.started {
		return fmt.Errorf("tetra: fixture must be loaded before Start")
	}
	n, err := g.board.fill(rows)
	if err != nil {
		return err
	}
	g.blockCount = n
	return nil
}
