package engine

// View is the read-only face of a Game handed to collaborators such as
// mino sources.
type View interface {
	Board() *Board
	Info() BoardInfo
	Statistics() Statistics
	IsGameOver() bool
}

// MinoSource supplies an unbounded sequence of minos to a Game.
type MinoSource interface {
	Next(v View) MinoType
}

// MinoSourceFunc adapts a function to MinoSource.
type MinoSourceFunc func(View) MinoType

// Next calls f(v).
func (f MinoSourceFunc) Next(v View) MinoType {
	return f(v)
}

// bagWarmup is the number of draws discarded from each distribution before first use.
const bagWarmup = 32

// BagSource is the 7-bag randomizer. Each bag holds every mino exactly once;
// an exhausted bag is reshuffled in place with a Fisher-Yates pass that draws
// the swap partner for index i from its own persistent [0, i] distribution.
type BagSource struct {
	rng   *XorShift128
	dists [NumMinoTypes]uniformInt
	bag   [NumMinoTypes]MinoType
	index int
}

// NewBagSource creates a bag source driven by rng.
func NewBagSource(rng *XorShift128) *BagSource {
	b := &BagSource{
		rng:   rng,
		bag:   AllMinoTypes,
		index: NumMinoTypes,
	}
	for i := range b.dists {
		b.dists[i] = newUniformInt(uint32(i + 1))
		for range bagWarmup {
			b.dists[i].draw(rng)
		}
	}
	return b
}

// NewSeededBagSource is NewBagSource over SeedXorShift128(seed).
func NewSeededBagSource(seed int64) *BagSource {
	return NewBagSource(SeedXorShift128(seed))
}

// Next returns the next mino, reshuffling when the bag is exhausted.
func (b *BagSource) Next(View) MinoType {
	if b.index >= NumMinoTypes {
		b.shuffle()
		b.index = 0
	}
	m := b.bag[b.index]
	b.index++
	return m
}

// Remaining returns how many minos are left before the next reshuffle.
func (b *BagSource) Remaining() int {
	return NumMinoTypes - b.index
}

func (b *BagSource) shuffle() {
	for i := NumMinoTypes - 1; i > 0; i-- {
		j := b.dists[i].draw(b.rng)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// ScriptedSource emits a fixed sequence and then defers to a fallback source.
type ScriptedSource struct {
	script   []MinoType
	pos      int
	fallback MinoSource
}

// NewScriptedSource creates a source that plays script before fallback.
// The script is copied.
func NewScriptedSource(script []MinoType, fallback MinoSource) *ScriptedSource {
	return &ScriptedSource{
		script:   append([]MinoType(nil), script...),
		fallback: fallback,
	}
}

// Next returns the next scripted mino, or the fallback's once the script is spent.
func (s *ScriptedSource) Next(v View) MinoType {
	if s.pos < len(s.script) {
		m := s.script[s.pos]
		s.pos++
		return m
	}
	return s.fallback.Next(v)
}

// Exhausted reports whether the scripted part has been fully emitted.
func (s *ScriptedSource) Exhausted() bool {
	return s.pos >= len(s.script)
}
