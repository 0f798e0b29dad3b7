package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cardpick.log")

	l := New(path)
	l.Info().Str("event", "test").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event":"test"`)
}

func TestWriterSharesSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardpick.log")

	l := New(path)
	_, err := l.Writer().Write([]byte("raw process output\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "raw process output")
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info().Msg("dropped")

	n, err := l.Writer().Write([]byte("dropped too"))
	require.NoError(t, err)
	assert.Equal(t, len("dropped too"), n)
}
