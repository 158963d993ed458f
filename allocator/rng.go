// Package allocator - RNG utilities shared by the restart loop.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Independence: each restart owns a stream derived from (seed, index), so
//     results do not depend on how restarts are scheduled.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every restart gets its own *rand.Rand.
package allocator

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer, so neighbouring indices give unrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG returns the stream for restart index under seed.
// Policy: seed==0 ⇒ defaultRNGSeed.
func restartRNG(seed int64, index int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(index))))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleInPlace moves k distinct, uniformly chosen elements of pool to
// pool[:k] (partial Fisher–Yates) and returns that prefix. pool stays a
// permutation of its original contents, so it can be reused across calls.
//
// Complexity: O(k) time, no allocations.
func sampleInPlace(pool []int, k int, rng *rand.Rand) []int {
	n := len(pool)
	if k > n {
		k = n
	}

	var i, j int
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
