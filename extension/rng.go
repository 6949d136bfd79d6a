// Package extension - RNG utilities for the approximate engine.
//
// Seed 0 selects a fixed default; per-trial streams are derived with
// SplitMix64 so no *rand.Rand is shared between goroutines.

package extension

import "math/rand/v2"

// defaultSeed replaces a zero Options.Seed so default runs are reproducible.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer; nearby inputs give unrelated outputs.
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// trialStream owns one PCG generator and reseeds it per trial, so the
// random choices of trial (step, attempt, trial) are a pure function of the
// run seed regardless of which worker executes it.
//
// Not safe for concurrent use; one per worker.
type trialStream struct {
	base uint64
	pcg  *rand.PCG
	rng  *rand.Rand
}

func newTrialStream(seed int64) *trialStream {
	if seed == 0 {
		seed = defaultSeed
	}
	pcg := rand.NewPCG(0, 0)

	return &trialStream{base: uint64(seed), pcg: pcg, rng: rand.New(pcg)}
}

// reseed positions the stream at the start of the given trial.
func (s *trialStream) reseed(step, attempt, trial int) *rand.Rand {
	hi := deriveSeed(s.base, uint64(step)<<32|uint64(uint32(attempt)))
	lo := deriveSeed(hi, uint64(trial))
	s.pcg.Seed(hi, lo)

	return s.rng
}
