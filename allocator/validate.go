// Package allocator - input and output validation.
//
// All checks are side-effect free and report sentinel errors from errors.go,
// wrapped with the offending value.
package allocator

import (
	"fmt"

	"github.com/katalvlaran/giftswap/participant"
)

// validateOptions checks Options without looking at the roster.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.Steps < 0:
		return fmt.Errorf("%w: steps=%d must be >= 0", ErrDegenerateConfiguration, opts.Steps)
	case opts.MaxOptions <= 0:
		return fmt.Errorf("%w: max options=%d must be > 0", ErrDegenerateConfiguration, opts.MaxOptions)
	case opts.Restarts <= 0:
		return fmt.Errorf("%w: restarts=%d must be > 0", ErrDegenerateConfiguration, opts.Restarts)
	case opts.Workers < 0:
		return fmt.Errorf("%w: workers=%d must be >= 0", ErrDegenerateConfiguration, opts.Workers)
	case opts.MaxShuffleAttempts <= 0:
		return fmt.Errorf("%w: max shuffle attempts=%d must be > 0", ErrDegenerateConfiguration, opts.MaxShuffleAttempts)
	}

	return nil
}

// validateRoster requires at least two distinct names and no repeated name.
//
// Complexity: O(n) time and space.
func validateRoster(ps []participant.Participant) error {
	seen := make(map[string]struct{}, len(ps))
	var dup string
	for _, p := range ps {
		if _, ok := seen[p.Key()]; ok && dup == "" {
			dup = p.Key()
		}
		seen[p.Key()] = struct{}{}
	}
	if len(seen) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientParticipants, len(seen))
	}
	if dup != "" {
		return fmt.Errorf("%w: %q", ErrDuplicateParticipant, dup)
	}

	return nil
}

// ValidateAssignment reports whether allocs is a complete, self-free
// assignment over roster: every participant appears exactly once as giver and
// exactly once as receiver, nobody outside the roster appears, and no giver
// is their own receiver.
//
// Errors: ErrNotBijective, ErrSelfAssignment (wrapped with the participant name).
//
// Complexity: O(n) time and space.
func ValidateAssignment(roster []participant.Participant, allocs []participant.Allocation) error {
	if len(allocs) != len(roster) {
		return fmt.Errorf("%w: %d allocations for %d participants", ErrNotBijective, len(allocs), len(roster))
	}

	known := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		known[p.Key()] = struct{}{}
	}
	gave := make(map[string]struct{}, len(allocs))
	got := make(map[string]struct{}, len(allocs))
	for _, a := range allocs {
		if a.Giver.Equal(a.Receiver) {
			return fmt.Errorf("%w: %q", ErrSelfAssignment, a.Giver.Name)
		}
		if _, ok := known[a.Giver.Key()]; !ok {
			return fmt.Errorf("%w: unknown giver %q", ErrNotBijective, a.Giver.Name)
		}
		if _, ok := known[a.Receiver.Key()]; !ok {
			return fmt.Errorf("%w: unknown receiver %q", ErrNotBijective, a.Receiver.Name)
		}
		if _, ok := gave[a.Giver.Key()]; ok {
			return fmt.Errorf("%w: %q gives twice", ErrNotBijective, a.Giver.Name)
		}
		if _, ok := got[a.Receiver.Key()]; ok {
			return fmt.Errorf("%w: %q receives twice", ErrNotBijective, a.Receiver.Name)
		}
		gave[a.Giver.Key()] = struct{}{}
		got[a.Receiver.Key()] = struct{}{}
	}

	return nil
}

// AssignmentScore returns Σ Score(giver, receiver, C) over allocs, where C is
// the category count of the givers (the roster of a complete assignment).
// A self-assignment makes the total −∞.
func AssignmentScore(allocs []participant.Allocation) float64 {
	givers := make([]participant.Participant, len(allocs))
	for i, a := range allocs {
		givers[i] = a.Giver
	}
	c := participant.CategoryCount(givers)

	var total float64
	for _, a := range allocs {
		total += Score(a.Giver, a.Receiver, c)
	}

	return total
}
