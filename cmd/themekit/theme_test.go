package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeShowDefaults(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, inDir(dir, "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     light")
	assert.Contains(t, stdout, "Theme:    light")
	assert.Contains(t, stdout, "Platform: unknown")
	assert.Contains(t, stdout, "Store:    file ("+filepath.Join(dir, "preferences.yaml")+")")
}

func TestThemeTogglePersists(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, inDir(dir, "theme", "toggle")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Theme mode set to dark (renders dark)")

	data, err := os.ReadFile(filepath.Join(dir, "preferences.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "dark")

	stdout, _, err = executeCommand(t, inDir(dir, "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     dark")

	stdout, _, err = executeCommand(t, inDir(dir, "theme", "toggle")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Theme mode set to light (renders light)")
}

func TestThemeSetSystemFollowsScheme(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, inDir(dir, "--scheme", "dark", "theme", "set", "system")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Theme mode set to system (renders dark)")

	stdout, _, err = executeCommand(t, inDir(dir, "--scheme", "light", "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     system")
	assert.Contains(t, stdout, "Theme:    light")
	assert.Contains(t, stdout, "Platform: light")

	// Toggling from system picks the opposite of what is shown.
	stdout, _, err = executeCommand(t, inDir(dir, "--scheme", "dark", "theme", "toggle")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Theme mode set to light")
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, inDir(dir, "theme", "set", "purple")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Use one of: light, dark, system.")

	_, err = os.Stat(filepath.Join(dir, "preferences.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestThemeSQLiteBackend(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, inDir(dir, "--backend", "sqlite", "theme", "set", "dark")...)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "preferences.db"))

	stdout, _, err := executeCommand(t, inDir(dir, "--backend", "sqlite", "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     dark")
	assert.Contains(t, stdout, "Store:    sqlite")
}

func TestThemeMemoryBackendDoesNotPersist(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, inDir(dir, "--backend", "memory", "theme", "toggle")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "set to dark")

	stdout, _, err = executeCommand(t, inDir(dir, "--backend", "memory", "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     light")
}

func TestThemeIgnoresCorruptPreference(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.yaml"), []byte("version: \"1.0\"\nvalues:\n  \"@theme_preference\": purple\n"), 0644))

	stdout, stderr, err := executeCommand(t, inDir(dir, "theme", "show")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mode:     light")
	assert.Contains(t, stderr, "ignoring unrecognised theme preference")
}

func TestThemeRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage:\n  backend: cloud\n"), 0644))

	_, _, err := executeCommand(t, inDir(dir, "theme", "show")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load configuration")
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "config.yaml and THEMEKIT_*")
}

func TestLogFileReceivesEntries(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "themekit.log")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n  file: "+logPath+"\n"), 0644))

	_, stderr, err := executeCommand(t, inDir(dir, "theme", "toggle")...)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme changed")
}
