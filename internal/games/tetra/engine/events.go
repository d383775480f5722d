package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// EventKind identifies a class of engine notification.
type EventKind int

const (
	EventBoardUpdate EventKind = iota
	EventStatisticsUpdate
	EventNewMino
	EventNextMino
	EventTSpin
	EventLineClear
	EventLand
	EventLock
	EventGameOver

	numEventKinds
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventBoardUpdate:
		return "BoardUpdate"
	case EventStatisticsUpdate:
		return "StatisticsUpdate"
	case EventNewMino:
		return "NewMino"
	case EventNextMino:
		return "NextMino"
	case EventTSpin:
		return "TSpin"
	case EventLineClear:
		return "LineClear"
	case EventLand:
		return "Land"
	case EventLock:
		return "Lock"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a notification emitted by Game. Payloads are read-only snapshots.
type Event interface {
	Kind() EventKind
}

// BoardUpdateEvent is sent after any change to the board or the active piece.
type BoardUpdateEvent struct {
	Info BoardInfo
}

// StatisticsUpdateEvent is sent whenever statistics may have changed.
type StatisticsUpdateEvent struct {
	Stats Statistics
}

// NewMinoEvent is sent when a piece spawns, including a piece swapped in by hold.
type NewMinoEvent struct {
	Mino MinoType
}

// NextMinoEvent is sent when the next queue changes.
type NextMinoEvent struct {
	Next []MinoType
}

// TSpinEvent is sent on lock when the piece is recognized as a T-Spin.
// BackToBack is the back-to-back count before this lock is applied.
type TSpinEvent struct {
	TSpin      TSpin
	BackToBack int
}

// LineClearEvent is sent when a lock clears at least one line.
type LineClearEvent struct {
	Info LineClearInfo
}

// LandEvent is sent when the active piece comes to rest. First is true the
// first time the piece lands after spawning.
type LandEvent struct {
	First bool
}

// LockEvent is sent right before a piece is written into the board.
type LockEvent struct{}

// GameOverEvent is sent once when a spawn collides.
type GameOverEvent struct{}

func (BoardUpdateEvent) Kind() EventKind      { return EventBoardUpdate }
func (StatisticsUpdateEvent) Kind() EventKind { return EventStatisticsUpdate }
func (NewMinoEvent) Kind() EventKind          { return EventNewMino }
func (NextMinoEvent) Kind() EventKind         { return EventNextMino }
func (TSpinEvent) Kind() EventKind            { return EventTSpin }
func (LineClearEvent) Kind() EventKind        { return EventLineClear }
func (LandEvent) Kind() EventKind             { return EventLand }
func (LockEvent) Kind() EventKind             { return EventLock }
func (GameOverEvent) Kind() EventKind         { return EventGameOver }

// Listener receives events of the kind it was subscribed to.
type Listener func(Event)

// ListenerID is the handle returned by Subscribe.
type ListenerID uint32

// Dispatcher multicasts events to listeners registered per kind.
// Delivery order between listeners of the same kind is unspecified.
// Dispatch is synchronous; listeners must not subscribe or unsubscribe while
// an event is being delivered.
type Dispatcher struct {
	nextID      ListenerID
	listeners   [numEventKinds]*intmap.Map[ListenerID, Listener]
	dispatching bool
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	for i := range d.listeners {
		d.listeners[i] = intmap.New[ListenerID, Listener](4)
	}
	return d
}

// Subscribe registers fn for events of the given kind.
func (d *Dispatcher) Subscribe(kind EventKind, fn Listener) ListenerID {
	d.checkIdle("subscribe")
	d.nextID++
	d.listeners[kind].Put(d.nextID, fn)
	return d.nextID
}

// Unsubscribe removes a listener. It reports whether the listener was registered.
func (d *Dispatcher) Unsubscribe(kind EventKind, id ListenerID) bool {
	d.checkIdle("unsubscribe")
	return d.listeners[kind].Del(id)
}

// Len returns the number of listeners registered for kind.
func (d *Dispatcher) Len(kind EventKind) int {
	return d.listeners[kind].Len()
}

// Dispatch delivers e to every listener of its kind.
func (d *Dispatcher) Dispatch(e Event) {
	m := d.listeners[e.Kind()]
	if m.Len() == 0 {
		return
	}
	d.dispatching = true
	defer func() { d.dispatching = false }()
	m.ForEach(func(_ ListenerID, fn Listener) bool {
		fn(e)
		return true
	})
}

func (d *Dispatcher) checkIdle(op string) {
	if d.dispatching {
		panic(fmt.Sprintf("tetra: cannot %s listeners during dispatch", op))
	}
}

// OnBoardUpdate subscribes a typed board update listener.
func (d *Dispatcher) OnBoardUpdate(fn func(BoardUpdateEvent)) ListenerID {
	return d.Subscribe(EventBoardUpdate, func(e Event) { fn(e.(BoardUpdateEvent)) })
}

// OnStatisticsUpdate subscribes a typed statistics listener.
func (d *Dispatcher) OnStatisticsUpdate(fn func(StatisticsUpdateEvent)) ListenerID {
	return d.Subscribe(EventStatisticsUpdate, func(e Event) { fn(e.(StatisticsUpdateEvent)) })
}

// OnNewMino subscribes a typed spawn listener.
func (d *Dispatcher) OnNewMino(fn func(NewMinoEvent)) ListenerID {
	return d.Subscribe(EventNewMino, func(e Event) { fn(e.(NewMinoEvent)) })
}

// OnNextMino subscribes a typed next-queue listener.
func (d *Dispatcher) OnNextMino(fn func(NextMinoEvent)) ListenerID {
	return d.Subscribe(EventNextMino, func(e Event) { fn(e.(NextMinoEvent)) })
}

// OnTSpin subscribes a typed T-Spin listener.
func (d *Dispatcher) OnTSpin(fn func(TSpinEvent)) ListenerID {
	return d.Subscribe(EventTSpin, func(e Event) { fn(e.(TSpinEvent)) })
}

// OnLineClear subscribes a typed line clear listener.
func (d *Dispatcher) OnLineClear(fn func(LineClearEvent)) ListenerID {
	return d.Subscribe(EventLineClear, func(e Event) { fn(e.(LineClearEvent)) })
}

// OnLand subscribes a typed landing listener.
func (d *Dispatcher) OnLand(fn func(LandEvent)) ListenerID {
	return d.Subscribe(EventLand, func(e Event) { fn(e.(LandEvent)) })
}

// OnLock subscribes a lock listener.
func (d *Dispatcher) OnLock(fn func()) ListenerID {
	return d.Subscribe(EventLock, func(Event) { fn() })
}

// OnGameOver subscribes a game over listener.
func (d *Dispatcher) OnGameOver(fn func()) ListenerID {
	return d.Subscribe(EventGameOver, func(Event) { fn() })
}
