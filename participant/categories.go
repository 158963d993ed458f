package participant

import (
	"slices"
	"strings"
)

// Categories is an immutable set of category tags.
//
// Tags are kept sorted and de-duplicated, which makes Overlap a linear merge
// and gives every set a stable textual order. The zero value is the empty set.
type Categories struct {
	tags []string
}

// NewCategories builds a set from tags. Surrounding whitespace is trimmed and
// blank tags are dropped; duplicates collapse into one entry.
//
// Complexity: O(k log k) for k tags.
func NewCategories(tags ...string) Categories {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)

	return Categories{tags: slices.Compact(out)}
}

// Len returns the number of distinct tags.
func (c Categories) Len() int { return len(c.tags) }

// Contains reports whether tag is in the set.
func (c Categories) Contains(tag string) bool {
	_, ok := slices.BinarySearch(c.tags, tag)
	return ok
}

// Values returns a copy of the tags in ascending order.
func (c Categories) Values() []string { return slices.Clone(c.tags) }

// Overlap returns |c ∩ other|.
//
// Complexity: O(len(c) + len(other)) via a merge walk over both sorted sets.
func (c Categories) Overlap(other Categories) int {
	var (
		i, j, n int
		a, b    = c.tags, other.tags
	)
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}

// Union returns c ∪ other as a new set.
func (c Categories) Union(other Categories) Categories {
	out := make([]string, 0, len(c.tags)+len(other.tags))
	out = append(out, c.tags...)
	out = append(out, other.tags...)
	slices.Sort(out)

	return Categories{tags: slices.Compact(out)}
}

// String renders the set as "{a, b, c}".
func (c Categories) String() string {
	return "{" + strings.Join(c.tags, ", ") + "}"
}
