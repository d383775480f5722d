package tetra

import "github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"

// Snapshot is the observable session state, used to check that two sessions
// fed the same seed and inputs stay identical.
type Snapshot struct {
	Frame    int
	Score    int
	Level    int
	Lines    int
	Wait     WaitState
	Outcome  Outcome
	NextLock int
	Current  engine.MinoType
	Rotation engine.Rotation
	Position engine.Point
	Hold     engine.MinoType
	HasHold  bool
	Next     []engine.MinoType
	Board    string
	Stats    engine.Statistics
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	info := s.game.Info()
	return Snapshot{
		Frame:    s.frame,
		Score:    s.score,
		Level:    s.levels.Level,
		Lines:    s.Lines(),
		Wait:     s.wait,
		Outcome:  s.outcome,
		NextLock: s.nextLock,
		Current:  info.Current,
		Rotation: info.Rotation,
		Position: info.Position,
		Hold:     info.Hold,
		HasHold:  info.HasHold,
		Next:     info.Next,
		Board:    s.game.Board().String(),
		Stats:    s.game.Statistics(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wait)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextLock)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotation)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Position.X)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Position.Y)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hold)          //#nosec G115 -- hash computation
	for _, m := range snap.Next {
		h = h*31 + uint64(m) //#nosec G115 -- hash computation
	}
	for i := 0; i < len(snap.Board); i++ {
		h = h*31 + uint64(snap.Board[i])
	}
	return h
}
