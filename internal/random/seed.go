// Package random provides seed generation for runs that should not repeat.
//
// It uses crypto/rand so two CLI invocations started in the same nanosecond
// still get unrelated streams. The allocator itself stays deterministic for a
// given seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	return SeedFrom(crand.Reader)
}

// SeedFrom reads a seed from r. Zero is reserved by the allocator for its
// fixed default stream, so a zero draw is mapped to 1.
func SeedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}

	return seed, nil
}
