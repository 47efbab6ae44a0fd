package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensCheck(t *testing.T) {
	stdout, _, err := executeCommand(t, "tokens", "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "in parity")
}

func TestTokensListsBothSets(t *testing.T) {
	stdout, _, err := executeCommand(t, "tokens")
	require.NoError(t, err)

	assert.Contains(t, stdout, "TOKEN")
	assert.Contains(t, stdout, "light")
	assert.Contains(t, stdout, "dark")
	assert.Contains(t, stdout, "brand-400")
	assert.Contains(t, stdout, "#E4E4E7")
	assert.Contains(t, stdout, "#27272A")
}

func TestTokensSingleTheme(t *testing.T) {
	stdout, _, err := executeCommand(t, "tokens", "--theme", "dark")
	require.NoError(t, err)

	assert.Contains(t, stdout, "#27272A")
	assert.NotContains(t, stdout, "#E4E4E7")
}

func TestTokensRejectsUnknownTheme(t *testing.T) {
	_, _, err := executeCommand(t, "tokens", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--theme light or --theme dark")
}

func TestTokensDiffShowsOnlyChangedColours(t *testing.T) {
	stdout, _, err := executeCommand(t, "tokens", "--diff")
	require.NoError(t, err)

	assert.Contains(t, stdout, "--- light\n+++ dark\n")
	assert.Contains(t, stdout, "-border-100 #E4E4E7")
	assert.Contains(t, stdout, "+border-100 #27272A")
	// Brand scales are shared by both sets.
	assert.NotContains(t, stdout, "brand-400")
}
