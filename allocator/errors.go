package allocator

import "errors"

// Sentinel errors. Callers branch with errors.Is; return sites wrap them with
// context via %w and never change their messages.
var (
	// ErrInsufficientParticipants indicates fewer than two distinct participants,
	// for which no self-free assignment exists. Also returned (wrapped) when the
	// derangement sampler exhausts Options.MaxShuffleAttempts.
	ErrInsufficientParticipants = errors.New("allocator: at least two distinct participants are required")

	// ErrDuplicateParticipant indicates two roster entries share a name.
	ErrDuplicateParticipant = errors.New("allocator: duplicate participant")

	// ErrDegenerateConfiguration indicates Options that cannot drive a search:
	// Steps < 0, MaxOptions <= 0, Restarts <= 0, Workers < 0 or
	// MaxShuffleAttempts <= 0.
	ErrDegenerateConfiguration = errors.New("allocator: degenerate configuration")

	// ErrNotBijective indicates an allocation list where some participant is
	// missing, unknown, or appears more than once as giver or receiver.
	ErrNotBijective = errors.New("allocator: assignment is not a bijection")

	// ErrSelfAssignment indicates a participant allocated to themselves.
	ErrSelfAssignment = errors.New("allocator: participant assigned to themselves")
)
