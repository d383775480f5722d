package core

// Signal is a boolean that advances once per tick. Decorators wrap another
// signal and step it before computing their own state.
type Signal interface {
	Step()
	State() bool
}

// Source is a raw signal set from outside, usually from an InputFrame.
type Source struct {
	next  bool
	state bool
}

// Set records the value the source takes on its next Step.
func (s *Source) Set(v bool) { s.next = v }

// Step latches the pending value.
func (s *Source) Step() { s.state = s.next }

// State returns the latched value.
func (s *Source) State() bool { return s.state }

// OneShot is true only on the tick its input turns on.
type OneShot struct {
	in    Signal
	prev  bool
	state bool
}

// NewOneShot wraps in with rising-edge detection.
func NewOneShot(in Signal) *OneShot {
	return &OneShot{in: in}
}

func (s *OneShot) Step() {
	s.in.Step()
	cur := s.in.State()
	s.state = cur && !s.prev
	s.prev = cur
}

func (s *OneShot) State() bool { return s.state }

// Delay turns on once its input has been on for more than delay consecutive ticks.
type Delay struct {
	in    Signal
	delay int
	count int
	state bool
}

// NewDelay wraps in with a hold delay.
func NewDelay(in Signal, delay int) *Delay {
	return &Delay{in: in, delay: delay}
}

func (s *Delay) Step() {
	s.in.Step()
	if !s.in.State() {
		s.count = 0
		s.state = false
		return
	}
	if s.count <= s.delay {
		s.count++
	}
	s.state = s.count > s.delay
}

func (s *Delay) State() bool { return s.state }

// Repeat fires on the first tick its input is on, again after delay ticks,
// and then every interval ticks while the input stays on.
type Repeat struct {
	in        Signal
	delay     int
	interval  int
	count     int
	repeating bool
	state     bool
}

// NewRepeat wraps in with auto-repeat.
func NewRepeat(in Signal, delay, interval int) *Repeat {
	return &Repeat{in: in, delay: delay, interval: interval}
}

func (s *Repeat) Step() {
	s.in.Step()
	switch {
	case !s.in.State():
		s.count = 0
		s.state = false
	case s.count == 0:
		s.repeating = false
		s.count = 1
		s.state = true
	case s.count >= s.period():
		s.repeating = true
		s.count = 1
		s.state = true
	default:
		s.count++
		s.state = false
	}
}

func (s *Repeat) period() int {
	if s.repeating {
		return s.interval
	}
	return s.delay
}

func (s *Repeat) State() bool { return s.state }
