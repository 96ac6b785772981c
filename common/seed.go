package common

// SeededRNG is a Mulberry32 generator. The offline renderer uses it to
// synthesize reproducible demo signals.
type SeededRNG struct {
	state uint32
	seed  uint32
}

// NewSeededRNG creates a generator positioned at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, seed: seed}
}

// Reset rewinds the generator to its seed.
func (r *SeededRNG) Reset() {
	r.state = r.seed
}

// Float returns the next value in [0,1).
func (r *SeededRNG) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Signed returns the next value in [-1,1).
func (r *SeededRNG) Signed() float64 {
	return r.Float()*2 - 1
}

// Range returns the next value in [lo,hi).
func (r *SeededRNG) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}
