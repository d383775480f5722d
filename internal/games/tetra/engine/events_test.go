package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherMulticast(t *testing.T) {
	d := NewDispatcher()
	var a, b int
	idA := d.Subscribe(EventLock, func(Event) { a++ })
	d.Subscribe(EventLock, func(Event) { b++ })
	d.Subscribe(EventGameOver, func(Event) { t.Error("wrong kind delivered") })

	d.Dispatch(LockEvent{})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, d.Len(EventLock))

	assert.True(t, d.Unsubscribe(EventLock, idA))
	assert.False(t, d.Unsubscribe(EventLock, idA))
	d.Dispatch(LockEvent{})
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestDispatcherTypedHelpers(t *testing.T) {
	d := NewDispatcher()
	var got TSpinEvent
	d.OnTSpin(func(e TSpinEvent) { got = e })
	d.Dispatch(TSpinEvent{TSpin: TSpinMiniSingle, BackToBack: 2})
	assert.Equal(t, TSpinEvent{TSpin: TSpinMiniSingle, BackToBack: 2}, got)
}

func TestDispatcherRejectsMutationDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	d.OnLock(func() {
		assert.Panics(t, func() { d.OnLock(func() {}) })
	})
	d.Dispatch(LockEvent{})
	// dispatcher is usable again afterwards
	assert.NotPanics(t, func() { d.OnLock(func() {}) })
}

func TestEventKindString(t *testing.T) {
	for k := EventBoardUpdate; k < numEventKinds; k++ {
		assert.NotEqual(t, "Unknown", k.String())
	}
	assert.Equal(t, "Unknown", numEventKinds.String())
}
