package participant

import "errors"

var (
	// ErrEmptyName indicates a participant was constructed without a name.
	// The name is the participant's identity, so it cannot be blank.
	ErrEmptyName = errors.New("participant: name must be non-empty")

	// ErrInvalidRoster indicates that roster input could not be decoded:
	// malformed JSON, a non-array document, or an entry with the wrong shape.
	ErrInvalidRoster = errors.New("participant: invalid roster")
)
