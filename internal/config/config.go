// Package config loads themekit settings with the precedence
// defaults < user config file < THEMEKIT_* environment < overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	KeyStorageBackend    = "storage.backend"
	KeyStoragePath       = "storage.path"
	KeyLogLevel          = "log.level"
	KeyLogHuman          = "log.human"
	KeyLogFile           = "log.file"
	KeyHapticsEnabled    = "haptics.enabled"
	KeyHapticsDurationMS = "haptics.duration_ms"
	KeyPlatformScheme    = "platform.scheme"
)

const (
	// DefaultHapticsDurationMS is the vibration length requested on activation.
	DefaultHapticsDurationMS = 50

	envPrefix = "THEMEKIT"
	dirName   = ".themekit"
)

// Config is the validated application configuration.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Haptics  HapticsConfig  `mapstructure:"haptics" yaml:"haptics"`
	Platform PlatformConfig `mapstructure:"platform" yaml:"platform"`

	// Dir is the directory holding the user config file and default stores.
	Dir string `mapstructure:"-" yaml:"-"`
}

// StorageConfig selects the preference store.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required,log_level"`
	Human bool   `mapstructure:"human" yaml:"human"`
	File  string `mapstructure:"file" yaml:"file"`
}

// HapticsConfig configures activation feedback.
type HapticsConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	DurationMS int  `mapstructure:"duration_ms" yaml:"duration_ms" validate:"min=1,max=1000"`
}

// Duration returns the configured pulse length.
func (h HapticsConfig) Duration() time.Duration {
	return time.Duration(h.DurationMS) * time.Millisecond
}

// PlatformConfig controls colour-scheme detection.
type PlatformConfig struct {
	Scheme string `mapstructure:"scheme" yaml:"scheme" validate:"required,oneof=auto light dark none"`
}

type loadSettings struct {
	dir        string
	configPath string
	overrides  map[string]any
}

// Option configures Load.
type Option func(*loadSettings)

// WithDir overrides the themekit directory (default ~/.themekit).
func WithDir(dir string) Option {
	return func(s *loadSettings) { s.dir = dir }
}

// WithConfigFile overrides the config file path (default <dir>/config.yaml).
func WithConfigFile(path string) Option {
	return func(s *loadSettings) { s.configPath = path }
}

// WithOverrides injects values typically coming from CLI flags.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) { s.overrides = overrides }
}

// Load builds, validates and returns the configuration.
func Load(opts ...Option) (*Config, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	dir := strings.TrimSpace(settings.dir)
	if dir == "" {
		path, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = path
	}
	configPath := strings.TrimSpace(settings.configPath)
	if configPath == "" {
		configPath = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, configPath); err != nil {
		return nil, err
	}
	for k, val := range settings.overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewParseError(configPath, 0, err)
	}
	cfg.Dir = dir
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Platform.Scheme = strings.ToLower(strings.TrimSpace(cfg.Platform.Scheme))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultDir returns ~/.themekit.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStorageBackend, "file")
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogHuman, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyHapticsEnabled, true)
	v.SetDefault(KeyHapticsDurationMS, DefaultHapticsDurationMS)
	v.SetDefault(KeyPlatformScheme, "auto")
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func mergeConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return apperrors.NewParseError(path, 0, fmt.Errorf("config path is a directory"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
