// Package tetra drives the rules engine at a fixed tick rate and adapts it to
// the arcade platform: input signal chains, gravity, lock delay, wait states,
// scoring, level progression, effects and rendering.
package tetra

import (
	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// WaitState is the driver sub-state between pieces.
type WaitState int

const (
	WaitNone        WaitState = iota // a piece is in play
	Wait                             // short pause after a lock without clears
	WaitByLineClear                  // line clear animation
	WaitEnd                          // the session has finished
)

// Outcome is how a session ended, if it has.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeCleared
	OutcomeOver
)

// Operation is the user operation applied during a tick.
type Operation int

const (
	OpNone Operation = iota
	OpHold
	OpMoveLeft
	OpMoveRight
	OpSoftDrop
	OpRotateRight
	OpRotateLeft
	OpHardDrop
)

func (o Operation) String() string {
	switch o {
	case OpHold:
		return "Hold"
	case OpMoveLeft:
		return "MoveLeft"
	case OpMoveRight:
		return "MoveRight"
	case OpSoftDrop:
		return "SoftDrop"
	case OpRotateRight:
		return "RotateRight"
	case OpRotateLeft:
		return "RotateLeft"
	case OpHardDrop:
		return "HardDrop"
	default:
		return "None"
	}
}

// ReadyPhase is the countdown shown before the first piece.
type ReadyPhase int

const (
	ReadyDone ReadyPhase = iota
	ReadyShow
	ReadyGap
	ReadyGo
)

// Buttons is the raw state of each logical button for one tick.
type Buttons struct {
	Left, Right, SoftDrop, HardDrop bool
	RotateRight, RotateLeft, Hold   bool
}

// ButtonsFrom extracts the game buttons from a platform input frame.
func ButtonsFrom(in core.InputFrame) Buttons {
	return Buttons{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		SoftDrop:    in.Has(core.ActionSoftDrop),
		HardDrop:    in.Has(core.ActionHardDrop),
		RotateRight: in.Has(core.ActionRotateRight),
		RotateLeft:  in.Has(core.ActionRotateLeft),
		Hold:        in.Has(core.ActionHold),
	}
}

// StepReport lists what happened during one tick.
type StepReport struct {
	Frame          int
	Operation      Operation
	Succeeded      bool
	Locked         bool
	LineClear      engine.LineClearInfo
	HasLineClear   bool
	TSpin          engine.TSpin
	LevelUp        bool
	ScoreDelta     int
	FellAfterClear bool // blocks dropped into the lowest cleared row
	Outcome        Outcome
}

// SessionOptions selects the piece source and start-up behavior.
type SessionOptions struct {
	Seed      int64
	Source    engine.MinoSource // replaces the seeded 7-bag when set
	Fixture   string            // debug board loaded before the first piece
	SkipReady bool              // start without the READY/GO countdown
}

type button int

const (
	btnLeft button = iota
	btnRight
	btnSoftDrop
	btnHardDrop
	btnRotateRight
	btnRotateLeft
	btnHold
	numButtons
)

// inputChain wraps each raw button in its one-shot or repeat decorator.
type inputChain struct {
	raw [numButtons]*core.Source
	sig [numButtons]core.Signal
}

func newInputChain(in config.TetraInput) inputChain {
	var c inputChain
	for i := range c.raw {
		c.raw[i] = &core.Source{}
	}
	arrow := func(b button, delay, interval int) core.Signal {
		return core.NewRepeat(core.NewDelay(c.raw[b], in.ArrowDelay), delay, interval)
	}
	c.sig[btnLeft] = arrow(btnLeft, in.HorizontalDelay, in.HorizontalInterval)
	c.sig[btnRight] = arrow(btnRight, in.HorizontalDelay, in.HorizontalInterval)
	c.sig[btnSoftDrop] = arrow(btnSoftDrop, in.VerticalDelay, in.VerticalInterval)
	c.sig[btnHardDrop] = core.NewOneShot(core.NewDelay(c.raw[btnHardDrop], in.ArrowDelay))
	c.sig[btnRotateRight] = core.NewOneShot(c.raw[btnRotateRight])
	c.sig[btnRotateLeft] = core.NewOneShot(c.raw[btnRotateLeft])
	c.sig[btnHold] = core.NewOneShot(c.raw[btnHold])
	return c
}

func (c *inputChain) step(b Buttons) {
	c.raw[btnLeft].Set(b.Left)
	c.raw[btnRight].Set(b.Right)
	c.raw[btnSoftDrop].Set(b.SoftDrop)
	c.raw[btnHardDrop].Set(b.HardDrop)
	c.raw[btnRotateRight].Set(b.RotateRight)
	c.raw[btnRotateLeft].Set(b.RotateLeft)
	c.raw[btnHold].Set(b.Hold)
	for _, s := range c.sig {
		s.Step()
	}
}

func (c *inputChain) on(b button) bool {
	return c.sig[b].State()
}

// pendingLock collects engine events raised during one tick.
type pendingLock struct {
	locked   bool
	clear    engine.LineClearInfo
	hasClear bool
	tspin    engine.TSpinEvent
	hasTSpin bool
}

// Session is one game from the first piece to game over or game clear.
type Session struct {
	cfg     config.TetraConfig
	table   engine.ScoreTable
	game    *engine.Game
	levels  engine.LevelProgress
	gravity config.GravityStep
	extreme bool
	target  int

	input inputChain

	frame       int
	ready       int
	readyTotal  int
	score       int
	fallCounter int
	nextLock    int
	lastShow    int
	nextShow    int
	wait        WaitState
	outcome     Outcome

	anime   lineClearAnime
	effects effects
	pending pendingLock
}

// NewSession builds a session from validated rules.
func NewSession(cfg config.TetraConfig, opts SessionOptions) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := opts.Source
	if source == nil {
		source = engine.NewSeededBagSource(opts.Seed)
	}
	var rows []string
	if opts.Fixture != "" {
		f, err := engine.LookupFixture(opts.Fixture)
		if err != nil {
			return nil, err
		}
		source = f.Source(source)
		rows = f.Rows
	}

	game, err := engine.New(engineOptions(cfg), source)
	if err != nil {
		return nil, err
	}
	if rows != nil {
		if err := game.LoadFixture(rows); err != nil {
			return nil, err
		}
	}

	s := &Session{
		cfg:     cfg,
		table:   scoreTable(cfg),
		game:    game,
		extreme: cfg.Game.Extreme,
		target:  config.TargetLines(cfg.Game.Mode),
		input:   newInputChain(cfg.Input),
	}
	s.levels = engine.NewLevelProgress(cfg.Game.StartLevel, cfg.Levels.Max, cfg.Levels.LinesPerLevel, s.extreme)
	s.gravity = cfg.GravityFor(s.levels.Level, s.extreme)
	s.subscribe()

	t := cfg.Timing
	s.readyTotal = t.ReadyTicks + t.ReadyGapTicks + t.GoTicks
	if opts.SkipReady || s.readyTotal <= 0 {
		s.begin()
	} else {
		s.ready = s.readyTotal
	}
	return s, nil
}

func (s *Session) subscribe() {
	ev := s.game.Events()
	ev.OnNewMino(func(engine.NewMinoEvent) {
		s.lastShow = s.frame
		s.fallCounter = 0
		s.resetLockFrame()
	})
	ev.OnLock(func() { s.pending.locked = true })
	ev.OnLineClear(func(e engine.LineClearEvent) {
		s.pending.clear = e.Info
		s.pending.hasClear = true
	})
	ev.OnTSpin(func(e engine.TSpinEvent) {
		s.pending.tspin = e
		s.pending.hasTSpin = true
	})
}

func (s *Session) begin() {
	s.ready = 0
	s.game.Start()
}

// Step advances the session by one tick.
func (s *Session) Step(b Buttons) StepReport {
	rep := StepReport{Frame: s.frame, Outcome: s.outcome}
	if s.outcome != OutcomePlaying {
		return rep
	}
	s.effects.step()

	if s.ready > 0 {
		s.ready--
		if s.ready == 0 {
			s.begin()
		}
		return rep
	}

	s.input.step(b)
	prevWait := s.wait
	s.anime.step()

	if s.wait != WaitNone && s.frame == s.nextShow {
		s.wait = WaitNone
		s.fallCounter = 0
		s.resetLockFrame()
	}
	if s.wait == WaitNone {
		s.updateGame(&rep)
	}

	switch {
	case prevWait != WaitNone && s.wait == WaitNone && s.game.Statistics().ClearedLines >= s.target:
		s.finish(OutcomeCleared)
	case s.game.IsGameOver():
		s.finish(OutcomeOver)
	}
	rep.Outcome = s.outcome
	s.frame++
	return rep
}

// updateGame runs gravity, the lock timer and one user operation.
func (s *Session) updateGame(rep *StepReport) {
	g := s.game
	s.pending = pendingLock{}

	s.fallCounter += s.gravity.Cells
	for s.fallCounter >= s.gravity.Frames {
		s.fallCounter -= s.gravity.Frames
		if g.MoveDown() {
			s.resetLockFrame()
		}
	}

	if s.frame == s.nextLock && g.OnceLanded() {
		if g.Landing() {
			g.Lock()
			s.afterLock(rep)
			return
		}
		// airborne again as the timer fired
		s.nextLock++
	}

	s.operate(rep)
	if s.pending.locked {
		s.afterLock(rep)
	}
}

func (s *Session) operate(rep *StepReport) {
	g := s.game
	in := &s.input
	t := s.cfg.Timing
	sinceShow := s.frame - s.lastShow

	switch {
	case in.on(btnHold):
		rep.Operation = OpHold
		rep.Succeeded = g.Hold()

	case in.on(btnRight) || in.on(btnLeft):
		if in.on(btnRight) {
			rep.Operation = OpMoveRight
			rep.Succeeded = g.MoveRight()
		} else {
			rep.Operation = OpMoveLeft
			rep.Succeeded = g.MoveLeft()
		}
		if rep.Succeeded {
			s.resetLockFrame()
		}

	case in.on(btnSoftDrop):
		rep.Operation = OpSoftDrop
		if g.MoveDown() {
			rep.Succeeded = true
			rep.ScoreDelta += s.table.SoftDropScore(1)
			s.resetLockFrame()
		}

	case (in.on(btnRotateRight) || in.on(btnRotateLeft)) && sinceShow >= t.RotateEnableWait:
		if in.on(btnRotateRight) {
			rep.Operation = OpRotateRight
			rep.Succeeded = g.RotateRight()
		} else {
			rep.Operation = OpRotateLeft
			rep.Succeeded = g.RotateLeft()
		}
		if rep.Succeeded {
			s.resetLockFrame()
		}

	case in.on(btnHardDrop) && sinceShow >= t.HardDropEnableWait:
		rep.Operation = OpHardDrop
		trail := s.dropTrail()
		from := g.Position()
		g.DropBottom(false)
		dist := g.Position().Y - from.Y
		rep.Succeeded = g.Lock()
		rep.ScoreDelta += s.table.HardDropScore(dist)
		if trail.H > 0 {
			s.effects.add(Effect{Kind: EffectHardDrop, Remaining: t.HardDropEffectTicks, Trail: trail})
		}
	}
	s.score += rep.ScoreDelta
}

// dropTrail returns the cells swept by a hard drop from the current position.
func (s *Session) dropTrail() core.Rect {
	info := s.game.Info()
	shape := engine.Shape(info.Current, info.Rotation)
	return core.NewRect(
		info.Position.X+shape.Min.X,
		info.Position.Y+shape.Min.Y,
		shape.Width,
		info.Ghost.Y-info.Position.Y,
	)
}

// afterLock enters the wait state and settles level, score and effects.
// A clear that levels up is scored at the new level.
func (s *Session) afterLock(rep *StepReport) {
	p := s.pending
	t := s.cfg.Timing
	rep.Locked = true
	if s.levels.Advance(s.game.Statistics().ClearedLines) {
		rep.LevelUp = true
		s.gravity = s.cfg.GravityFor(s.levels.Level, s.extreme)
	}
	level := s.levels.Level
	if p.hasTSpin {
		rep.TSpin = p.tspin.TSpin
	}

	delta := 0
	if p.hasClear {
		info := p.clear
		rep.LineClear, rep.HasLineClear = info, true
		rep.FellAfterClear = fellAfterClear(info)
		s.wait = WaitByLineClear
		s.nextShow = s.frame + t.LineClearWait + 1
		s.anime.start(info, t.LineClearAnimeInterval, t.LineClearAnimePhases)
		delta = s.table.LockScore(engine.LockResult{
			Lines:        info.Lines,
			TSpin:        info.TSpin,
			BackToBack:   info.BackToBack,
			Ren:          info.Ren,
			PerfectClear: info.PerfectClear,
		}, level, s.extreme)
		s.effects.lineClear(info, t)
	} else {
		s.wait = Wait
		s.nextShow = s.frame + t.SpawnWait + 1
		var tspin *engine.TSpinEvent
		if p.hasTSpin {
			tspin = &p.tspin
			delta = s.table.LockScore(engine.LockResult{
				TSpin:      p.tspin.TSpin,
				BackToBack: p.tspin.BackToBack,
			}, level, s.extreme)
		}
		s.effects.plainLock(tspin, t)
	}
	rep.ScoreDelta += delta
	s.score += delta
}

// resetLockFrame restarts the lock delay, or schedules an immediate lock once
// the piece has used up its operations while landed.
func (s *Session) resetLockFrame() {
	t := s.cfg.Timing
	if s.game.OperationsAfterLand() >= t.MaxOperationsAfterLand {
		s.nextLock = s.frame + 1
		return
	}
	s.nextLock = s.frame + t.LockDelay + 1
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.wait = WaitEnd
	if !s.game.IsGameOver() {
		s.game.GameOver()
	}
}

// fellAfterClear reports whether any block ended up in the lowest cleared row.
func fellAfterClear(info engine.LineClearInfo) bool {
	if len(info.Rows) == 0 || info.AfterFall == nil {
		return false
	}
	y := info.Rows[len(info.Rows)-1]
	for x := 1; x < info.Width-1; x++ {
		if info.AfterFall.At(engine.Point{X: x, Y: y}) != engine.BlockNone {
			return true
		}
	}
	return false
}

// Frame returns the number of ticks played since the first piece.
func (s *Session) Frame() int { return s.frame }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.levels.Level }

// Lines returns the cleared-line total.
func (s *Session) Lines() int { return s.game.Statistics().ClearedLines }

// Target returns the cleared-line count that wins the session.
func (s *Session) Target() int { return s.target }

// Extreme reports whether the session runs in extreme mode.
func (s *Session) Extreme() bool { return s.extreme }

// Outcome returns how the session ended, or OutcomePlaying.
func (s *Session) Outcome() Outcome { return s.outcome }

// Wait returns the current wait sub-state.
func (s *Session) Wait() WaitState { return s.wait }

// Statistics returns the engine counters.
func (s *Session) Statistics() engine.Statistics { return s.game.Statistics() }

// Info returns the active piece and queue snapshot.
func (s *Session) Info() engine.BoardInfo { return s.game.Info() }

// Engine exposes the rules engine for read-only inspection.
func (s *Session) Engine() engine.Observer { return s.game.ReadOnly() }

// Effects returns the running HUD effects.
func (s *Session) Effects() []Effect {
	return append([]Effect(nil), s.effects.list...)
}

// ReadyPhase returns the countdown phase, or ReadyDone once play has begun.
func (s *Session) ReadyPhase() ReadyPhase {
	if s.ready == 0 {
		return ReadyDone
	}
	t := s.cfg.Timing
	elapsed := s.readyTotal - s.ready
	switch {
	case elapsed < t.ReadyTicks:
		return ReadyShow
	case elapsed < t.ReadyTicks+t.ReadyGapTicks:
		return ReadyGap
	default:
		return ReadyGo
	}
}
