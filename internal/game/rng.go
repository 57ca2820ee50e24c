package game

// RNG is the randomness the simulation consumes.
// Tests inject scripted sources; the default is a seeded SimpleRNG.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit linear congruential generator; games replay exactly for a seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are the well-distributed ones
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// IDSource hands out identifiers for words and display entries.
type IDSource interface {
	Next() int64
}

// CounterIDs is a monotonic IDSource starting at 1. Zero is never issued,
// so it can stand for "no word".
type CounterIDs struct {
	last int64
}

// Next returns the next identifier.
func (c *CounterIDs) Next() int64 {
	c.last++
	return c.last
}
