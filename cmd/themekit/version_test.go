package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildVars(t *testing.T, v, c, d string) {
	t.Helper()
	prevVersion, prevCommit, prevDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = prevVersion, prevCommit, prevDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setBuildVars(t, "1.2.3", "abcdef1", "2025-10-03")

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)

	require.Contains(t, stdout, "themekit 1.2.3")
	require.Contains(t, stdout, "commit: abcdef1")
	require.Contains(t, stdout, "built: 2025-10-03")
	require.Contains(t, stdout, "go: "+runtime.Version())
}

func TestVersionShort(t *testing.T) {
	setBuildVars(t, "1.2.3", "abcdef1", "2025-10-03")

	stdout, _, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", stdout)
}
