package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/internal/domain"
)

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, settings.Debug)
	assert.Empty(t, settings.StorageMode)
}

func TestSaveSettingsTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	readers := 4
	wal := false

	err := SaveSettingsTo(path, &Settings{
		MaxReaders:   &readers,
		StorageMode:  "memory",
		WAL:          &wal,
		WatchExclude: StringArray{"node_modules"},
	})
	require.NoError(t, err)

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.MaxReaders)
	assert.Equal(t, 4, *loaded.MaxReaders)
	require.NotNil(t, loaded.WAL)
	assert.False(t, *loaded.WAL)
	assert.Equal(t, "memory", loaded.StorageMode)
	assert.Equal(t, StringArray{"node_modules"}, loaded.WatchExclude)
}

func TestSaveSettingsTo_OverwritesLongerContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, SaveSettingsTo(path, &Settings{GlobalIgnoreFile: "/a/very/long/path/to/an/ignore/file"}))
	require.NoError(t, SaveSettingsTo(path, &Settings{StorageMode: "file"}))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.GlobalIgnoreFile)
	assert.Equal(t, "file", loaded.StorageMode)
}

func TestStringArray_AcceptsCommaSeparated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"watch_exclude": "dist, build ,"}`), 0644))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, StringArray{"dist", "build"}, loaded.WatchExclude)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"refresh", "quit"}

	assert.NoError(t, KeyBindingsConfig{"refresh": {"r"}}.Validate(valid))
	assert.Error(t, KeyBindingsConfig{"explode": {"x"}}.Validate(valid))
	assert.Error(t, KeyBindingsConfig{"refresh": {""}}.Validate(valid))
	assert.Error(t, KeyBindingsConfig{"refresh": {"q"}, "quit": {"q"}}.Validate(valid))
}

func TestStatusPalette(t *testing.T) {
	palette := NewStatusPalette("10")
	assert.Equal(t, "10", palette.GetColor(domain.StatusAdded))
	assert.Equal(t, "33", palette.GetColor(domain.StatusModified))
	assert.Equal(t, "", palette.GetColor(domain.StatusClean))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestGetDBPath_HonorsHome(t *testing.T) {
	t.Setenv("TESSERA_HOME", "/tmp/tessera-test")
	assert.Equal(t, "/tmp/tessera-test/state.db", GetDBPath())
	assert.Equal(t, "/tmp/tessera-test/settings.json", GetSettingsPath())
}
