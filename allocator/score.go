package allocator

import (
	"math"
	"sync"

	"github.com/katalvlaran/giftswap/participant"
)

// Score returns the compatibility of giving to receiver under category count c.
//
//	−∞                                    if giver and receiver are the same participant
//	−(c − |giver.CanGive ∩ receiver.CanReceive|)²   otherwise
//
// The maximum, 0, means the giver covers every category. Score is pure.
func Score(giver, receiver participant.Participant, c int) float64 {
	if giver.Equal(receiver) {
		return math.Inf(-1)
	}
	miss := float64(c - giver.CanGive.Overlap(receiver.CanReceive))

	return -(miss * miss)
}

// scoreKey identifies one memoized Score evaluation.
type scoreKey struct {
	giver      string
	receiver   string
	categories int
}

// ScoreCache memoizes Score by (giver name, receiver name, category count).
//
// It is safe for concurrent use. Entries are never evicted; the key space is
// bounded by participants² per category count. A cache may be shared across
// Solve calls through Options.Cache when the same roster is allocated
// repeatedly. Participants are keyed by name, so a shared cache must not see
// two different category sets under the same name.
type ScoreCache struct {
	mu sync.RWMutex
	m  map[scoreKey]float64
}

// NewScoreCache returns an empty cache.
func NewScoreCache() *ScoreCache {
	return &ScoreCache{m: make(map[scoreKey]float64)}
}

// Score returns the memoized Score(giver, receiver, c), computing it on a miss.
func (sc *ScoreCache) Score(giver, receiver participant.Participant, c int) float64 {
	key := scoreKey{giver: giver.Key(), receiver: receiver.Key(), categories: c}

	sc.mu.RLock()
	v, ok := sc.m[key]
	sc.mu.RUnlock()
	if ok {
		return v
	}

	v = Score(giver, receiver, c)
	sc.mu.Lock()
	sc.m[key] = v
	sc.mu.Unlock()

	return v
}

// Len returns the number of memoized entries.
func (sc *ScoreCache) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return len(sc.m)
}

// scoreTable is a dense row-major n×n prefetch of pair scores:
// w[g*n+r] = Score(ps[g], ps[r], c). Read-only once built, so restarts may
// share it across goroutines.
type scoreTable struct {
	n int
	w []float64
}

func newScoreTable(ps []participant.Participant, c int, cache *ScoreCache) scoreTable {
	n := len(ps)
	t := scoreTable{n: n, w: make([]float64, n*n)}

	var g, r int
	for g = 0; g < n; g++ {
		for r = 0; r < n; r++ {
			t.w[g*n+r] = cache.Score(ps[g], ps[r], c)
		}
	}

	return t
}

// at returns the score of giver index g giving to receiver index r.
func (t scoreTable) at(g, r int) float64 { return t.w[g*t.n+r] }

// total returns Σ at(g, recv[g]).
func (t scoreTable) total(recv []int) float64 {
	var s float64
	for g, r := range recv {
		s += t.at(g, r)
	}

	return s
}
