package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

func TestDemoRequiresTerminal(t *testing.T) {
	for _, args := range [][]string{{"demo"}, {}} {
		_, _, err := executeCommand(t, args...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errNotTerminal))
		assert.Contains(t, err.Error(), "interactive terminal")
	}
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"demo", "theme", "resolve", "tokens", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestConfigOptionsOnlyCarryChangedFlags(t *testing.T) {
	dir := t.TempDir()
	flags := &rootFlags{}
	cmd := &cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().StringVar(&flags.dir, "dir", "", "")
	cmd.Flags().StringVar(&flags.backend, "backend", "", "")
	cmd.Flags().StringVar(&flags.storePath, "store", "", "")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "")
	cmd.Flags().StringVar(&flags.scheme, "scheme", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--dir", dir, "--backend", "memory", "-v"}))

	cfg, err := config.Load(flags.configOptions(cmd)...)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Platform.Scheme)
}

func TestCommandErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := newCommandError("do thing", "step one", cause, "Try again.")
	assert.Equal(t, "Failed to do thing: step one\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := newCommandError("do thing", "step one", cause, "")
	assert.Equal(t, "Failed to do thing: step one\n\nError: boom", bare.Error())
}
