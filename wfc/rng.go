// Package wfc - RNG utilities shared by selection, collapse and attempts.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Explicit plumbing: the generator is passed to nextCell and observe as an
//     argument; there is no package-level random state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Run owns its own generator;
//     parallel attempts derive independent seeds with deriveSeed.
package wfc

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed,
// so attempt k of a reseeding loop gets a stream uncorrelated with k±1.
//
// SplitMix64 finalizer constants (Vigna 2014).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSeed exposes the attempt seed derivation so callers can reproduce
// a single attempt of Attempts with Run.
func DeriveSeed(parent int64, attempt int) int64 {
	return deriveSeed(parent, uint64(attempt))
}
