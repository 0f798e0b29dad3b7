package backends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerNamedBackend(t *testing.T) {
	m, err := NewManager(Config{}, "noop", "noop")
	require.NoError(t, err)
	assert.Equal(t, "noop", m.Filler().Name())
	assert.Equal(t, "noop", m.Syncer().Name())
}

func TestManagerUnknownFiller(t *testing.T) {
	_, err := NewManager(Config{}, "no-such-filler", "noop")
	assert.Error(t, err)
}

func TestManagerUnknownSyncer(t *testing.T) {
	_, err := NewManager(Config{}, "noop", "no-such-syncer")
	assert.Error(t, err)
}

func TestManagerFallsBackToNoop(t *testing.T) {
	// The built-in backend packages are not imported by this test
	// binary, so autodetection finds nothing and lands on noop.
	m, err := NewManager(Config{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "noop", m.Filler().Name())
	assert.Equal(t, "noop", m.Syncer().Name())
}
