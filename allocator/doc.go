// Package allocator assigns every participant of a gift exchange exactly one
// other participant to give to, maximizing how well givers' offerings match
// receivers' wishes.
//
// 🚀 What does it solve?
//
//	Given n participants, find a derangement π (a permutation with no fixed
//	points) maximizing Σ score(i, π(i)), where
//
//	  score(g, r) = −∞                    if g == r
//	  score(g, r) = −(C − |give(g) ∩ receive(r)|)²   otherwise
//
//	and C = |∪ receive| over the whole roster. A perfect match scores 0;
//	mismatches are penalized quadratically.
//
// ✨ How:
//
//	Randomized restarts, each followed by pairwise-swap local search:
//	  1. Draw uniform random permutations until one has no fixed point.
//	  2. Repeat Steps times: pick a target, sample up to MaxOptions distinct
//	     swap candidates, keep the one whose exchanged pairs score highest
//	     (first strictly greater wins on ties), and commit the exchange only
//	     when it strictly beats the current pairs.
//	  3. Keep the first strictly best restart out of Restarts.
//
//	This is a heuristic: the result is good, not provably optimal.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/giftswap/allocator"
//
//	opts := allocator.DefaultOptions() // Steps=1000, MaxOptions=50, Restarts=5
//	opts.Seed = 42                     // 0 ⇒ fixed default stream
//
//	allocs, err := allocator.Allocate(roster, opts)
//	if errors.Is(err, allocator.ErrInsufficientParticipants) {
//	  // fewer than two distinct people
//	}
//	for _, a := range allocs {
//	  fmt.Println(a) // "foo -> qux"
//	}
//
// Determinism:
//
//	Every restart draws from its own stream derived from (Seed, restart index).
//	The same roster, Options and Seed always yield the same result, including
//	when Workers > 1 spreads restarts across goroutines.
//
// Performance:
//
//   - Scoring table: O(n²·k) once per call (k = tags per set), memoized in ScoreCache.
//   - Search: O(Restarts · Steps · min(n, MaxOptions)) table lookups.
//   - Memory: O(n²) for the table, O(n) per restart.
package allocator
