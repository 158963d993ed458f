// Package allocator - one restart: random derangement + pairwise-swap local search.
//
// State is index-based: recv[g] is the roster index of giver g's receiver.
// recv is always a permutation with no fixed points once initialized; a swap
// exchanges two receivers, which preserves the permutation, and is only
// committed when it strictly raises the pair score, which rules out
// introducing a fixed point (−∞).
package allocator

import (
	"fmt"
	"math/rand"
)

// restartOutcome is what one restart hands back to the selector.
type restartOutcome struct {
	recv []int
	stat RestartStat
}

// initialDerangement draws uniform random permutations of 0..n-1 until one
// has no fixed point, giving up after maxAttempts draws.
//
// For n ≥ 2 roughly 1/e of permutations qualify (1/2 for n=2), so the bound is
// never reached in practice.
func initialDerangement(n, maxAttempts int, rng *rand.Rand) ([]int, error) {
	recv := make([]int, n)
	for i := range recv {
		recv[i] = i
	}

	var attempt int
	for attempt = 0; attempt < maxAttempts; attempt++ {
		shuffleIntsInPlace(recv, rng)
		if !hasFixedPoint(recv) {
			return recv, nil
		}
	}

	return nil, fmt.Errorf("%w: no self-free shuffle in %d attempts", ErrInsufficientParticipants, maxAttempts)
}

func hasFixedPoint(recv []int) bool {
	for i, r := range recv {
		if i == r {
			return true
		}
	}

	return false
}

// runRestart executes one full restart on table t.
//
// Per step:
//  1. target ← uniform index.
//  2. candidates ← min(n, maxOptions) distinct uniform indices.
//  3. best ← pickCandidate.
//  4. If that swapped score strictly exceeds at(target, recv[target]) +
//     at(best, recv[best]), exchange the two receivers and add the difference
//     to the running score.
//
// Complexity: O(n) setup + O(steps · min(n, maxOptions)).
func runRestart(t scoreTable, index int, opts Options) (restartOutcome, error) {
	rng := restartRNG(opts.Seed, index)
	n := t.n

	recv, err := initialDerangement(n, opts.MaxShuffleAttempts, rng)
	if err != nil {
		return restartOutcome{}, fmt.Errorf("restart %d: %w", index, err)
	}
	score := t.total(recv)
	stat := RestartStat{Index: index, InitialScore: score}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	var (
		step, target, best int
		bestScore, cur     float64
		candidates         []int
	)
	for step = 0; step < opts.Steps; step++ {
		target = rng.Intn(n)
		candidates = sampleInPlace(pool, opts.MaxOptions, rng)

		best, bestScore = pickCandidate(t, recv, target, candidates)
		cur = t.at(target, recv[target]) + t.at(best, recv[best])
		if bestScore > cur {
			recv[target], recv[best] = recv[best], recv[target]
			score += bestScore - cur
			stat.Accepted++
		}
	}
	stat.Score = score

	return restartOutcome{recv: recv, stat: stat}, nil
}

// pickCandidate returns the candidate c maximizing the swapped pair score
// at(target, recv[c]) + at(c, recv[target]), together with that score.
// candidates must be non-empty. Ties go to the earliest candidate: the first
// one seeds the maximum and later ones replace it only when strictly greater.
func pickCandidate(t scoreTable, recv []int, target int, candidates []int) (int, float64) {
	best := candidates[0]
	bestScore := t.at(target, recv[best]) + t.at(best, recv[target])

	var cand float64
	for _, c := range candidates[1:] {
		cand = t.at(target, recv[c]) + t.at(c, recv[target])
		if cand > bestScore {
			best, bestScore = c, cand
		}
	}

	return best, bestScore
}
