package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Contacts.Filler)
	assert.Empty(t, cfg.Sync.Syncer)
	assert.NotEmpty(t, cfg.Log.Path)
	assert.NotEmpty(t, cfg.Contacts.DatabasePath)
}

func TestLoadFromParsesFile(t *testing.T) {
	path := writeConfig(t, `
[contacts]
filler = "pycarddav"
command = ["mytool", "--mutt"]

[sync]
syncer = "vdirsyncer"

[log]
path = "/tmp/cardpick-test.log"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "pycarddav", cfg.Contacts.Filler)
	assert.Equal(t, []string{"mytool", "--mutt"}, cfg.Contacts.Command)
	assert.Equal(t, "vdirsyncer", cfg.Sync.Syncer)
	assert.Equal(t, "/tmp/cardpick-test.log", cfg.Log.Path)
}

func TestLoadFromBadTOML(t *testing.T) {
	path := writeConfig(t, `this is not toml = = =`)

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[contacts]
filler = "khard"
`)

	t.Setenv("CARDPICK_FILLER", "sqlitedb")
	t.Setenv("CARDPICK_SYNCER", "pycardsyncer")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlitedb", cfg.Contacts.Filler)
	assert.Equal(t, "pycardsyncer", cfg.Sync.Syncer)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, "x.db"), expandPath("~/x.db"))
	assert.Equal(t, "/abs/x.db", expandPath("/abs/x.db"))
	assert.Equal(t, "", expandPath(""))
}

func TestLoadHonorsConfigEnv(t *testing.T) {
	path := writeConfig(t, `
[contacts]
filler = "custom"
`)
	t.Setenv("CARDPICK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Contacts.Filler)
}
