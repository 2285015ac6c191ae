// Package rng provides the seeded randomness for plan and content
// generation. A master seed is never consumed directly; every file index gets
// its own derived child stream, so the i-th file's draws are a pure function
// of (seed, phase, i) no matter which worker touches it or in what order.
package rng

import "math/rand/v2"

// Phases partition the derived stream space so planning, content, and
// timestamp draws for the same index never interleave.
const (
	phasePlan uint64 = iota
	phaseContent
	phaseStamp
)

// Source derives deterministic child streams from a master seed.
type Source struct {
	seed int64
}

// New returns a source for an explicit seed.
func New(seed int64) *Source {
	return &Source{seed: seed}
}

// NewRandom returns a source with a freshly chosen seed. Callers should
// report Seed() so the run can be replayed.
func NewRandom() *Source {
	return &Source{seed: int64(rand.Uint64() & 0x7fffffffffffffff)}
}

// Seed returns the master seed.
func (s *Source) Seed() int64 {
	return s.seed
}

// Plan returns the planning stream for a file index.
func (s *Source) Plan(index int) *rand.Rand {
	return s.stream(phasePlan, index)
}

// Content returns the content stream for a file index.
func (s *Source) Content(index int) *rand.Rand {
	return s.stream(phaseContent, index)
}

// Stamp returns the timestamp stream for a file index.
func (s *Source) Stamp(index int) *rand.Rand {
	return s.stream(phaseStamp, index)
}

func (s *Source) stream(phase uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(s.seed), mix(uint64(index)<<2|phase)))
}

// mix avalanches the stream key so adjacent indexes land in unrelated PCG
// sequences (splitmix64 finalizer).
func mix(k uint64) uint64 {
	k ^= k >> 30
	k *= 0xbf58476d1ce4e5b9
	k ^= k >> 27
	k *= 0x94d049bb133111eb
	k ^= k >> 31
	return k
}

// WeightedIndex draws an index from weights proportionally. Zero or negative
// weights are treated as zero; an all-zero table falls back to uniform.
func WeightedIndex(r *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return r.IntN(len(weights))
	}
	n := r.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
