package participant

import (
	"fmt"
	"strings"
)

// Participant is one person in the exchange.
//
// Values are immutable once constructed: fields are read-only by convention
// and Categories hides its backing slice. Identity is Name; use Equal or Key,
// never ==, to compare participants.
type Participant struct {
	// Name uniquely identifies the participant.
	Name string
	// CanGive holds the categories this participant is able to give.
	CanGive Categories
	// CanReceive holds the categories this participant wants to receive.
	CanReceive Categories
}

// New constructs a Participant. The name is trimmed and must be non-empty.
func New(name string, canGive, canReceive []string) (Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Participant{}, ErrEmptyName
	}

	return Participant{
		Name:       name,
		CanGive:    NewCategories(canGive...),
		CanReceive: NewCategories(canReceive...),
	}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples
// with literal input.
func MustNew(name string, canGive, canReceive []string) Participant {
	p, err := New(name, canGive, canReceive)
	if err != nil {
		panic(err)
	}

	return p
}

// Key returns the identity used for equality, hashing and self-detection.
func (p Participant) Key() string { return p.Name }

// Equal reports whether p and other are the same participant (same name).
func (p Participant) Equal(other Participant) bool { return p.Name == other.Name }

// String renders "name give=… receive=…".
func (p Participant) String() string {
	return fmt.Sprintf("%s give=%s receive=%s", p.Name, p.CanGive, p.CanReceive)
}

// CategoryCount returns the number of distinct categories any participant
// wants to receive, |∪ p.CanReceive|. The allocator uses it as the scoring
// normalizer for a whole run.
func CategoryCount(ps []Participant) int {
	var all Categories
	for _, p := range ps {
		all = all.Union(p.CanReceive)
	}

	return all.Len()
}

// Allocation is one resolved edge of a finished assignment.
type Allocation struct {
	Giver    Participant
	Receiver Participant
}

// String renders the allocation as "<giver> -> <receiver>".
func (a Allocation) String() string {
	return a.Giver.Name + " -> " + a.Receiver.Name
}
