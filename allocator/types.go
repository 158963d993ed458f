package allocator

import "github.com/katalvlaran/giftswap/participant"

// Defaults used by DefaultOptions.
const (
	DefaultSteps              = 1000
	DefaultMaxOptions         = 50
	DefaultRestarts           = 5
	DefaultWorkers            = 1
	DefaultMaxShuffleAttempts = 1000
)

// Options configures the local-search allocator.
//
// Fields:
//   - Steps             : local-search iterations per restart (≥ 0; 0 keeps the random start).
//   - MaxOptions        : swap candidates sampled per iteration (> 0, capped at n).
//   - Restarts          : independent restarts; the best one wins (> 0).
//   - Seed              : base seed; 0 ⇒ the fixed default stream.
//   - Workers           : goroutines running restarts (0 or 1 ⇒ sequential).
//   - MaxShuffleAttempts: bound on rejection sampling of the initial derangement.
//   - Cache             : optional score cache shared across calls; nil ⇒ per call.
//   - OnRestart         : optional hook, called once per restart in index order
//     after the search finished.
type Options struct {
	Steps              int
	MaxOptions         int
	Restarts           int
	Seed               int64
	Workers            int
	MaxShuffleAttempts int
	Cache              *ScoreCache
	OnRestart          func(RestartStat)
}

// DefaultOptions returns Steps=1000, MaxOptions=50, Restarts=5, sequential
// execution and the default seed.
func DefaultOptions() Options {
	return Options{
		Steps:              DefaultSteps,
		MaxOptions:         DefaultMaxOptions,
		Restarts:           DefaultRestarts,
		Workers:            DefaultWorkers,
		MaxShuffleAttempts: DefaultMaxShuffleAttempts,
	}
}

// RestartStat summarizes one restart.
type RestartStat struct {
	// Index is the restart number, 0-based.
	Index int
	// InitialScore is the aggregate score of the random starting derangement.
	InitialScore float64
	// Score is the aggregate score after local search.
	Score float64
	// Accepted counts committed swaps.
	Accepted int
}

// Result is the outcome of Solve.
type Result struct {
	// Allocations holds one entry per participant, givers in roster order.
	Allocations []participant.Allocation
	// Score is the aggregate score of Allocations.
	Score float64
	// Categories is the normalizer C used for the whole run.
	Categories int
	// Best is the index of the winning restart.
	Best int
	// Restarts holds per-restart statistics in index order.
	Restarts []RestartStat
}
