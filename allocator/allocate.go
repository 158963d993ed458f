// Package allocator - public entry points and restart orchestration.
package allocator

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/giftswap/participant"
)

// Allocate runs the search and returns one allocation per participant,
// givers in roster order.
//
// Errors: ErrDegenerateConfiguration, ErrInsufficientParticipants,
// ErrDuplicateParticipant. Either a complete valid assignment is returned or
// nothing is.
func Allocate(roster []participant.Participant, opts Options) ([]participant.Allocation, error) {
	res, err := Solve(roster, opts)
	if err != nil {
		return nil, err
	}

	return res.Allocations, nil
}

// Solve is Allocate plus the winning score and per-restart statistics.
//
// Stages:
//  1. Validate Options, then the roster (fail fast, before any search).
//  2. C ← participant.CategoryCount(roster); prefetch the n×n score table.
//  3. Run Restarts restarts, sequentially or on up to Workers goroutines.
//  4. Scan restarts in index order; the first strictly highest score wins.
//
// Complexity: O(n²) table + O(Restarts · Steps · min(n, MaxOptions)).
func Solve(roster []participant.Participant, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateRoster(roster); err != nil {
		return Result{}, err
	}

	cache := opts.Cache
	if cache == nil {
		cache = NewScoreCache()
	}
	c := participant.CategoryCount(roster)
	table := newScoreTable(roster, c, cache)

	outcomes, err := runRestarts(table, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Categories: c,
		Restarts:   make([]RestartStat, len(outcomes)),
	}
	for i, o := range outcomes {
		res.Restarts[i] = o.stat
		if i == 0 || o.stat.Score > outcomes[res.Best].stat.Score {
			res.Best = i
		}
		if opts.OnRestart != nil {
			opts.OnRestart(o.stat)
		}
	}

	win := outcomes[res.Best]
	res.Score = win.stat.Score
	res.Allocations = make([]participant.Allocation, len(roster))
	for g, r := range win.recv {
		res.Allocations[g] = participant.Allocation{Giver: roster[g], Receiver: roster[r]}
	}

	return res, nil
}

// runRestarts executes every restart and returns outcomes indexed by restart.
// Each restart writes only its own slot, so no locking is needed; the table
// is read-only.
func runRestarts(t scoreTable, opts Options) ([]restartOutcome, error) {
	outcomes := make([]restartOutcome, opts.Restarts)

	if opts.Workers <= 1 {
		var err error
		for i := range outcomes {
			if outcomes[i], err = runRestart(t, i, opts); err != nil {
				return nil, err
			}
		}

		return outcomes, nil
	}

	var g errgroup.Group
	g.SetLimit(min(opts.Workers, opts.Restarts))
	for i := range outcomes {
		g.Go(func() error {
			o, err := runRestart(t, i, opts)
			if err != nil {
				return err
			}
			outcomes[i] = o

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
