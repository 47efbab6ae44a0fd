package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "preferences.yaml"), cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Human)
	assert.True(t, cfg.Haptics.Enabled)
	assert.Equal(t, 50*time.Millisecond, cfg.Haptics.Duration())
	assert.Equal(t, "auto", cfg.Platform.Scheme)
	assert.Equal(t, dir, cfg.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
storage:
  backend: sqlite
log:
  level: debug
  human: true
haptics:
  enabled: false
  duration_ms: 120
platform:
  scheme: dark
`)

	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "preferences.db"), cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Human)
	assert.False(t, cfg.Haptics.Enabled)
	assert.Equal(t, 120, cfg.Haptics.DurationMS)
	assert.Equal(t, "dark", cfg.Platform.Scheme)
}

func TestEnvironmentBeatsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: debug\n")
	t.Setenv("THEMEKIT_LOG_LEVEL", "warn")
	t.Setenv("THEMEKIT_HAPTICS_DURATION_MS", "200")

	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 200, cfg.Haptics.DurationMS)
}

func TestOverridesBeatEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THEMEKIT_STORAGE_BACKEND", "sqlite")

	cfg, err := Load(WithDir(dir), WithOverrides(map[string]any{
		KeyStorageBackend: "memory",
		KeyPlatformScheme: "none",
	}))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, "none", cfg.Platform.Scheme)
}

func TestExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  path: /tmp/prefs.yaml\n"), 0644))

	cfg, err := Load(WithDir(t.TempDir()), WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs.yaml", cfg.Storage.Path)
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unknown backend", "storage:\n  backend: redis\n", "storage.backend"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"zero duration", "haptics:\n  duration_ms: 0\n", "haptics.duration_ms"},
		{"long duration", "haptics:\n  duration_ms: 5000\n", "haptics.duration_ms"},
		{"bad scheme", "platform:\n  scheme: sepia\n", "platform.scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)

			_, err := Load(WithDir(dir))
			var valErr *apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		})
	}
}

func TestValidationMessageNamesAllowedValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "storage:\n  backend: redis\n")

	_, err := Load(WithDir(dir))
	require.Error(t, err)
	assert.Equal(t, `validation error: storage.backend: must be one of: file sqlite memory (got "redis")`, err.Error())
}

func TestParseErrorCarriesLine(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: debug\n bad: [\n")

	_, err := Load(WithDir(dir))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), parseErr.Path)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
}

func TestEmptyConfigFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "   \n")

	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestGetValidatorIsSingleton(t *testing.T) {
	assert.Same(t, validatorInstance(), validatorInstance())
}

func TestExtractLine(t *testing.T) {
	assert.Equal(t, 3, extractLine(errors.New("yaml: line 3: did not find expected key")))
	assert.Equal(t, 0, extractLine(errors.New("no position")))
	assert.Equal(t, 0, extractLine(nil))
}
