package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden", "k", "v")
	logger.Info("restart done", "restart", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "restart done")
	assert.Contains(t, out, "restart=2")
	assert.Contains(t, out, "level=INFO")
}

func TestNew_BadLevel(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "nope")
	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	logger.Error("dropped")
}
