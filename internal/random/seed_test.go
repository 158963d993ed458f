package random

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFrom_LittleEndian(t *testing.T) {
	seed, err := SeedFrom(bytes.NewReader([]byte{0x01, 0x02, 0, 0, 0, 0, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, int64(0x0201), seed)
}

func TestSeedFrom_ZeroMapsToOne(t *testing.T) {
	seed, err := SeedFrom(bytes.NewReader(make([]byte, 8)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), seed)
}

func TestSeedFrom_ShortRead(t *testing.T) {
	_, err := SeedFrom(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read error") }

func TestSeedFrom_ReaderError(t *testing.T) {
	_, err := SeedFrom(errReader{})
	assert.ErrorContains(t, err, "read random seed")
}

func TestNewSeed_NonZero(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
