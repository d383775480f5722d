package engine

// Default xorshift128 state words.
const (
	xorshiftDefaultX = 123456789
	xorshiftDefaultY = 362436069
	xorshiftDefaultZ = 521288629
	xorshiftDefaultW = 88675123
)

// XorShift128 is Marsaglia's 128-bit xorshift generator.
type XorShift128 struct {
	x, y, z, w uint32
}

// NewXorShift128 seeds the generator from two words. The remaining state keeps
// its default values, so a zero seed still yields a usable sequence.
func NewXorShift128(w, x uint32) *XorShift128 {
	if w == 0 && x == 0 {
		w, x = xorshiftDefaultW, xorshiftDefaultX
	}
	return &XorShift128{x: x, y: xorshiftDefaultY, z: xorshiftDefaultZ, w: w}
}

// SeedXorShift128 splits a 64-bit seed into the two seeding words.
func SeedXorShift128(seed int64) *XorShift128 {
	return NewXorShift128(uint32(seed), uint32(uint64(seed)>>32))
}

// Uint32 returns the next value in the sequence.
func (r *XorShift128) Uint32() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = (r.w ^ (r.w >> 19)) ^ (t ^ (t >> 8))
	return r.w
}

// uniformInt draws integers uniformly from [0, n) by rejection.
type uniformInt struct {
	n     uint32
	limit uint32
}

func newUniformInt(n uint32) uniformInt {
	// Largest multiple of n that fits in 32 bits; draws at or above it are rejected.
	limit := uint32((uint64(1) << 32) / uint64(n) * uint64(n) % (uint64(1) << 32))
	return uniformInt{n: n, limit: limit}
}

func (u uniformInt) draw(r *XorShift128) int {
	for {
		v := r.Uint32()
		if u.limit == 0 || v < u.limit {
			return int(v % u.n)
		}
	}
}
