package randsrc

import "math/rand/v2"

// seedMix is folded into the second PCG state word so that nearby seeds
// still start the generator from well-separated states.
const seedMix = 0x9e3779b97f4a7c15

// Source is a deterministic stream of random bits backed by a PCG
// generator. Construct one with New, derive independent streams with
// Split. Not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. The same seed always produces
// the same stream of draws.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^seedMix))}
}

// Split derives an independent child Source from s.
// It consumes exactly two draws from s, so successive children of the
// same parent receive distinct states and the parent's remaining stream
// stays deterministic.
func (s *Source) Split() *Source {
	return &Source{rng: rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64()))}
}

// Float64 returns the next draw in the half-open interval [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uint64 returns the next raw 64-bit draw.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}
