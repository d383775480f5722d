package core

import (
	"testing"

	"pgregory.net/rapid"
)

// run feeds pattern into the source and records the decorated output.
func run(src *Source, sig Signal, pattern []bool) []bool {
	out := make([]bool, len(pattern))
	for i, v := range pattern {
		src.Set(v)
		sig.Step()
		out[i] = sig.State()
	}
	return out
}

func held(n int) []bool {
	p := make([]bool, n)
	for i := range p {
		p[i] = true
	}
	return p
}

func ticksOn(out []bool) []int {
	var on []int
	for i, v := range out {
		if v {
			on = append(on, i)
		}
	}
	return on
}

func TestOneShot(t *testing.T) {
	src := &Source{}
	out := run(src, NewOneShot(src), []bool{true, true, false, true, false, false, true})
	want := []int{0, 3, 6}
	if got := ticksOn(out); !equalInts(got, want) {
		t.Errorf("OneShot fired on %v, want %v", got, want)
	}
}

func TestDelay(t *testing.T) {
	src := &Source{}
	out := run(src, NewDelay(src, 1), []bool{true, true, true, false, true, true})
	want := []int{1, 2, 5}
	if got := ticksOn(out); !equalInts(got, want) {
		t.Errorf("Delay(1) on %v, want %v", got, want)
	}
}

func TestRepeat(t *testing.T) {
	src := &Source{}
	out := run(src, NewRepeat(src, 10, 2), held(16))
	want := []int{0, 10, 12, 14}
	if got := ticksOn(out); !equalInts(got, want) {
		t.Errorf("Repeat(10, 2) on %v, want %v", got, want)
	}
}

func TestArrowChain(t *testing.T) {
	src := &Source{}
	sig := NewRepeat(NewDelay(src, 1), 10, 2)
	out := run(src, sig, held(14))
	want := []int{1, 11, 13}
	if got := ticksOn(out); !equalInts(got, want) {
		t.Errorf("arrow chain fired on %v, want %v", got, want)
	}
}

func TestOneShotNeverFiresTwiceInARow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pattern := rapid.SliceOf(rapid.Bool()).Draw(t, "pattern")
		src := &Source{}
		out := run(src, NewOneShot(src), pattern)
		for i := range out {
			if out[i] && !pattern[i] {
				t.Fatalf("fired at %d with input off", i)
			}
			if i > 0 && out[i] && out[i-1] {
				t.Fatalf("fired on consecutive ticks %d and %d", i-1, i)
			}
		}
	})
}

func TestRepeatFiresOnPress(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		delay := rapid.IntRange(1, 20).Draw(t, "delay")
		interval := rapid.IntRange(1, 10).Draw(t, "interval")
		pattern := rapid.SliceOf(rapid.Bool()).Draw(t, "pattern")
		src := &Source{}
		out := run(src, NewRepeat(src, delay, interval), pattern)
		for i := range out {
			pressed := pattern[i] && (i == 0 || !pattern[i-1])
			if pressed && !out[i] {
				t.Fatalf("no output on press at %d", i)
			}
			if !pattern[i] && out[i] {
				t.Fatalf("output at %d with input off", i)
			}
		}
	})
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
