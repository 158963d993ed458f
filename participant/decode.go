package participant

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeJSON parses a roster document: a JSON array of objects
//
//	[{"name": "foo", "can_give": ["art", "writing"], "can_receive": ["art"]}, ...]
//
// Missing category arrays decode as empty sets. Every failure wraps
// ErrInvalidRoster (or ErrEmptyName for a blank name) with the entry index.
//
// Participants are returned in document order; duplicate names are left for
// the allocator to reject.
func DecodeJSON(data []byte) ([]Participant, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidRoster)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrInvalidRoster)
	}

	var (
		out []Participant
		err error
		idx int
	)
	root.ForEach(func(_, v gjson.Result) bool {
		var p Participant
		p, err = decodeEntry(v)
		if err != nil {
			err = fmt.Errorf("entry %d: %w", idx, err)
			return false
		}
		out = append(out, p)
		idx++

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decodeEntry(v gjson.Result) (Participant, error) {
	if !v.IsObject() {
		return Participant{}, fmt.Errorf("%w: entry must be an object", ErrInvalidRoster)
	}
	name := v.Get("name")
	if name.Type != gjson.String {
		return Participant{}, fmt.Errorf("%w: name must be a string", ErrInvalidRoster)
	}
	give, err := readTags(v.Get("can_give"), "can_give")
	if err != nil {
		return Participant{}, err
	}
	receive, err := readTags(v.Get("can_receive"), "can_receive")
	if err != nil {
		return Participant{}, err
	}

	return New(name.String(), give, receive)
}

// readTags reads an optional array of strings.
func readTags(v gjson.Result, field string) ([]string, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalidRoster, field)
	}

	var (
		tags []string
		bad  bool
	)
	v.ForEach(func(_, t gjson.Result) bool {
		if t.Type != gjson.String {
			bad = true
			return false
		}
		tags = append(tags, t.Str)

		return true
	})
	if bad {
		return nil, fmt.Errorf("%w: %s must contain only strings", ErrInvalidRoster, field)
	}

	return tags, nil
}
