package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigErrorNamesKindAndValue(t *testing.T) {
	t.Parallel()

	err := NewConfigError(KindTheme, "sepia", "")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, KindTheme, cfgErr.Kind)
	require.Equal(t, "sepia", cfgErr.Name)
	require.Contains(t, err.Error(), `unknown theme "sepia"`)
}

func TestConfigErrorWithMessage(t *testing.T) {
	t.Parallel()

	err := NewConfigError(KindToken, "brand-1000", "not defined in dark set")
	require.Contains(t, err.Error(), "brand-1000")
	require.Contains(t, err.Error(), "not defined in dark set")
}

func TestStorageErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("set", "@theme_preference", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "set", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "@theme_preference")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.True(t, stdErrors.Is(err, ErrInvalidConfig))
	require.Equal(t, "parse error: config.yaml:12: unexpected token", err.Error())

	noLine := NewParseError("config.yaml", 0, underlying)
	require.Equal(t, "parse error: config.yaml: unexpected token", noLine.Error())
}

func TestValidationErrorIncludesFieldAndValue(t *testing.T) {
	t.Parallel()

	err := NewValidationErrorWithValue("storage.backend", "must be one of: file sqlite memory", "redis", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "storage.backend", validationErr.Field)
	require.True(t, stdErrors.Is(err, ErrInvalidConfig))
	require.Equal(t, `validation error: storage.backend: must be one of: file sqlite memory (got "redis")`, err.Error())

	bare := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", bare.Error())
}

func TestOtherErrorsAreNotConfigFailures(t *testing.T) {
	t.Parallel()

	require.False(t, stdErrors.Is(NewStorageError("get", "k", stdErrors.New("x")), ErrInvalidConfig))
	require.False(t, stdErrors.Is(NewConfigError(KindMode, "purple", ""), ErrInvalidConfig))
}
